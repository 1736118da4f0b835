package models

import "strings"

// Teams is the fixed set of franchises bidding in the auction, in
// display order
var Teams = []string{"CSK", "MI", "RCB", "KKR"}

// NormalizeTeam matches a user-entered team name against the fixed set,
// case-insensitively. Returns the canonical name and whether it matched.
func NormalizeTeam(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, t := range Teams {
		if strings.EqualFold(t, trimmed) {
			return t, true
		}
	}
	return "", false
}

// IsAdmin checks a Discord user ID against the configured auctioneer
// list. Admins run the auction; everyone else gets read-only views.
func IsAdmin(adminIDs []string, userID string) bool {
	for _, id := range adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
