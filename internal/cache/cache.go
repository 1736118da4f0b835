package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/splcricket/auction-bot/internal/models"
)

const (
	rosterKey   = "roster"
	imagePrefix = "image:"
)

// Cache holds short-lived copies of sheet reads and fetched player
// images so read-only commands don't hammer the API between mutations.
type Cache struct {
	cache    *gocache.Cache
	duration time.Duration
}

func New(duration time.Duration) *Cache {
	return &Cache{
		cache:    gocache.New(duration, duration*2),
		duration: duration,
	}
}

func (c *Cache) SetRoster(players models.PlayerList) {
	c.cache.Set(rosterKey, players, c.duration)
}

func (c *Cache) GetRoster() (models.PlayerList, bool) {
	if players, found := c.cache.Get(rosterKey); found {
		return players.(models.PlayerList), true
	}
	return nil, false
}

// InvalidateRoster drops the cached roster after a sheet mutation
func (c *Cache) InvalidateRoster() {
	c.cache.Delete(rosterKey)
}

// SetImage caches fetched image bytes for a player image reference.
// Images never change mid-auction so they get a long TTL.
func (c *Cache) SetImage(ref string, data []byte) {
	c.cache.Set(imagePrefix+ref, data, 12*time.Hour)
}

func (c *Cache) GetImage(ref string) ([]byte, bool) {
	if data, found := c.cache.Get(imagePrefix + ref); found {
		return data.([]byte), true
	}
	return nil, false
}

func (c *Cache) Flush() {
	c.cache.Flush()
}
