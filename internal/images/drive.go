package images

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/splcricket/auction-bot/internal/cache"
)

// PlaceholderURL is shown when a player has no usable image. Image
// failures are cosmetic and never block the auction.
const PlaceholderURL = "https://via.placeholder.com/300?text=No+Image"

// Fetcher resolves Google Drive share links to image bytes
type Fetcher struct {
	httpClient *http.Client
	cache      *cache.Cache
}

func NewFetcher(c *cache.Cache) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: c,
	}
}

// Fetch downloads the image behind a Drive share link. Returns
// (nil, false) when the reference is unusable or the download fails;
// callers fall back to the placeholder.
func (f *Fetcher) Fetch(ref string) ([]byte, bool) {
	fileID := ExtractFileID(ref)
	if fileID == "" {
		return nil, false
	}

	if f.cache != nil {
		if data, found := f.cache.GetImage(fileID); found {
			return data, true
		}
	}

	downloadURL := fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", fileID)
	resp, err := f.httpClient.Get(downloadURL)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false
	}

	if f.cache != nil {
		f.cache.SetImage(fileID, data)
	}
	return data, true
}

// ExtractFileID pulls the Drive file ID out of a share link. Handles
// both the "?id=" query form and the "/d/<id>/" path form.
func ExtractFileID(ref string) string {
	if ref == "" {
		return ""
	}

	if i := strings.Index(ref, "id="); i >= 0 {
		id := ref[i+len("id="):]
		if j := strings.Index(id, "&"); j >= 0 {
			id = id[:j]
		}
		return id
	}

	if i := strings.Index(ref, "/d/"); i >= 0 {
		id := ref[i+len("/d/"):]
		if j := strings.Index(id, "/"); j >= 0 {
			id = id[:j]
		}
		return id
	}

	return ""
}
