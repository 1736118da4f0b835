package models

import (
	"sort"
	"strings"
)

// PlayerList represents a slice of players with helper methods
type PlayerList []Player

// Sold returns the players already sold to a team
func (pl PlayerList) Sold() PlayerList {
	var filtered PlayerList
	for _, p := range pl {
		if p.IsSold() {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Unsold returns the players marked unsold in round 1
func (pl PlayerList) Unsold() PlayerList {
	var filtered PlayerList
	for _, p := range pl {
		if p.IsUnsold() {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Available returns players not yet decided either way
func (pl PlayerList) Available() PlayerList {
	var filtered PlayerList
	for _, p := range pl {
		if p.IsAvailable() {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByTeam returns players belonging to a specific team
func (pl PlayerList) FilterByTeam(teamName string) PlayerList {
	var filtered PlayerList
	teamLower := strings.ToLower(strings.TrimSpace(teamName))

	for _, p := range pl {
		if strings.ToLower(strings.TrimSpace(p.TeamName)) == teamLower {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AtSetPriority returns players with the given set priority
func (pl PlayerList) AtSetPriority(priority int) PlayerList {
	var filtered PlayerList
	for _, p := range pl {
		if p.SetPriority == priority {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// MinSetPriority returns the lowest set priority present, or ok=false
// for an empty list
func (pl PlayerList) MinSetPriority() (int, bool) {
	if len(pl) == 0 {
		return 0, false
	}
	min := pl[0].SetPriority
	for _, p := range pl[1:] {
		if p.SetPriority < min {
			min = p.SetPriority
		}
	}
	return min, true
}

// SearchByName returns players whose names contain the search string
func (pl PlayerList) SearchByName(search string) PlayerList {
	var matches PlayerList
	searchLower := strings.ToLower(search)

	for _, p := range pl {
		if strings.Contains(strings.ToLower(p.Name), searchLower) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindByRowIndex returns the player at a given sheet data row
func (pl PlayerList) FindByRowIndex(rowIndex int) (*Player, bool) {
	for i := range pl {
		if pl[i].RowIndex == rowIndex {
			return &pl[i], true
		}
	}
	return nil, false
}

// SortedUnsold returns the unsold players ordered for display:
// re-offer priority first, then by name
func (pl PlayerList) SortedUnsold() PlayerList {
	unsold := pl.Unsold()
	sort.SliceStable(unsold, func(i, j int) bool {
		if unsold[i].UnsoldPriority != unsold[j].UnsoldPriority {
			return unsold[i].UnsoldPriority < unsold[j].UnsoldPriority
		}
		return unsold[i].Name < unsold[j].Name
	})
	return unsold
}
