package sheets

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/splcricket/auction-bot/internal/models"
)

// Store rows are 1-indexed and row 1 is the header, so data row i in
// memory lives at sheet row i+2.
const rowOffset = 2

// Client reads and writes the auction roster tab through the Google
// Sheets API using service-account credentials.
type Client struct {
	svc           *sheetsv4.Service
	spreadsheetID string
	sheetName     string

	mu     sync.RWMutex
	header map[string]int // column positions captured on the last read
}

func NewClient(ctx context.Context, spreadsheetID, sheetName, credentialsFile string) (*Client, error) {
	svc, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// ReadAll fetches the whole roster tab and parses it into players.
// Blank rows are skipped but keep their row index so writes still land
// on the right sheet row.
func (c *Client) ReadAll(ctx context.Context) (models.PlayerList, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet data: %w", err)
	}
	if len(resp.Values) < 1 {
		return nil, fmt.Errorf("sheet %q has no header row", c.sheetName)
	}

	header := models.HeaderIndex(rowStrings(resp.Values[0]))
	c.mu.Lock()
	c.header = header
	c.mu.Unlock()

	var players models.PlayerList
	for i, row := range resp.Values[1:] {
		if p := models.ParsePlayerRow(rowStrings(row), header, i); p != nil {
			players = append(players, *p)
		}
	}
	return players, nil
}

// WriteCell updates a single cell addressed by data-row index and
// column header. Fail-fast: no retries, the caller decides what a
// failed write means for session state.
func (c *Client) WriteCell(ctx context.Context, rowIndex int, column, value string) error {
	colIndex, err := c.columnIndex(ctx, column)
	if err != nil {
		return err
	}

	cellRange := fmt.Sprintf("%s!%s%d", c.sheetName, columnLetter(colIndex), rowIndex+rowOffset)
	body := &sheetsv4.ValueRange{Values: [][]interface{}{{value}}}

	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, cellRange, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", cellRange, err)
	}
	return nil
}

func (c *Client) columnIndex(ctx context.Context, column string) (int, error) {
	c.mu.RLock()
	header := c.header
	c.mu.RUnlock()

	// Writes normally follow a read, but fetch the header row if not
	if header == nil {
		headerRange := fmt.Sprintf("%s!1:1", c.sheetName)
		resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, headerRange).Context(ctx).Do()
		if err != nil {
			return 0, fmt.Errorf("failed to fetch header row: %w", err)
		}
		if len(resp.Values) < 1 {
			return 0, fmt.Errorf("sheet %q has no header row", c.sheetName)
		}
		header = models.HeaderIndex(rowStrings(resp.Values[0]))
		c.mu.Lock()
		c.header = header
		c.mu.Unlock()
	}

	i, ok := header[column]
	if !ok {
		return 0, fmt.Errorf("column %q not found in sheet %q", column, c.sheetName)
	}
	return i, nil
}

// columnLetter converts a 0-based column index to A1 notation
func columnLetter(index int) string {
	letter := ""
	for index >= 0 {
		letter = string(rune('A'+index%26)) + letter
		index = index/26 - 1
	}
	return letter
}

func rowStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}
