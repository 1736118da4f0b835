package models

import (
	"strconv"
	"strings"
)

// Sheet column headers in the auction roster tab
const (
	ColPlayerName     = "Player Name"
	ColStatus         = "Status"
	ColSoldPrice      = "Sold Price"
	ColTeamName       = "Team Name"
	ColPrimaryRole    = "Primary Role"
	ColBattingStyle   = "Batting Style"
	ColImage          = "Upload your image"
	ColSetPriority    = "Set Priority"
	ColUnsoldPriority = "Unsold Priority"
)

// Player status values as stored in the sheet. Anything else
// (usually blank) means the player has not come up for bidding yet.
const (
	StatusSold   = "Sold"
	StatusUnsold = "Unsold"
)

// Priority defaults applied when the optional columns are missing or
// unparseable
const (
	DefaultSetPriority    = 100
	DefaultUnsoldPriority = 2

	// UnsoldPriorityReoffer marks an unsold player for fast re-offer
	// ahead of the standard round-2 pool
	UnsoldPriorityReoffer = 1
)

// Player represents one row of the auction roster sheet
type Player struct {
	RowIndex       int // 0-based index into the data rows (header excluded)
	Name           string
	Role           string
	BattingStyle   string
	ImageRef       string
	Status         string
	SoldPrice      int
	TeamName       string
	SetPriority    int
	UnsoldPriority int
}

// IsSold reports whether the player has been sold to a team
func (p *Player) IsSold() bool {
	return p.Status == StatusSold
}

// IsUnsold reports whether the player went unsold in round 1
func (p *Player) IsUnsold() bool {
	return p.Status == StatusUnsold
}

// IsAvailable reports whether the player has not yet been decided
// either way (the round-1 pool)
func (p *Player) IsAvailable() bool {
	return !p.IsSold() && !p.IsUnsold()
}

// HeaderIndex maps trimmed column headers to their position in the row
func HeaderIndex(headerRow []string) map[string]int {
	index := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		index[strings.TrimSpace(h)] = i
	}
	return index
}

// ParsePlayerRow parses a sheet row into a Player using the header row
// for column positions. Returns nil for blank rows so callers can skip
// them. Missing or unparseable priority columns fall back to their
// defaults rather than failing the row.
func ParsePlayerRow(row []string, header map[string]int, rowIndex int) *Player {
	name := cellAt(row, header, ColPlayerName)
	if name == "" {
		return nil
	}

	p := &Player{
		RowIndex:       rowIndex,
		Name:           name,
		Role:           cellAt(row, header, ColPrimaryRole),
		BattingStyle:   cellAt(row, header, ColBattingStyle),
		ImageRef:       cellAt(row, header, ColImage),
		Status:         cellAt(row, header, ColStatus),
		TeamName:       cellAt(row, header, ColTeamName),
		SetPriority:    intCellAt(row, header, ColSetPriority, DefaultSetPriority),
		UnsoldPriority: intCellAt(row, header, ColUnsoldPriority, DefaultUnsoldPriority),
	}

	if price, err := strconv.Atoi(cellAt(row, header, ColSoldPrice)); err == nil && price >= 0 {
		p.SoldPrice = price
	}

	return p
}

func cellAt(row []string, header map[string]int, column string) string {
	i, ok := header[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func intCellAt(row []string, header map[string]int, column string, fallback int) int {
	value := cellAt(row, header, column)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
