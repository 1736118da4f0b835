package auction

import (
	"fmt"

	"github.com/splcricket/auction-bot/internal/models"
)

// Round identifies which stage of the auction is in play
type Round int

const (
	// RoundComplete means every pool has been exhausted
	RoundComplete Round = iota

	// Round1 offers players who have never come up, one priority set
	// at a time
	Round1

	// Round2Priority re-offers unsold players flagged for fast re-offer
	Round2Priority

	// Round2Standard re-offers the remaining unsold players
	Round2Standard
)

// Phase is the currently active round, the pool of players eligible to
// be drawn, and the minimum bid in force. Derived from the roster on
// every read, never stored.
type Phase struct {
	Round  Round
	Set    int // set priority in play, round 1 only
	MinBid int
	Pool   models.PlayerList
}

// Complete reports whether the auction has finished
func (p Phase) Complete() bool {
	return p.Round == RoundComplete
}

// Label returns the operator-facing name of the phase
func (p Phase) Label() string {
	switch p.Round {
	case Round1:
		return fmt.Sprintf("ROUND 1 (SET %d)", p.Set)
	case Round2Priority:
		return "ROUND 2 (PRIORITY UNSOLD)"
	case Round2Standard:
		return "ROUND 2 (STANDARD UNSOLD)"
	default:
		return "AUCTION COMPLETE"
	}
}

// DetectPhase classifies the roster into the active phase. Round 1
// works through set priorities lowest-first and must be exhausted
// before round 2 starts; within round 2, flagged re-offers come before
// the standard unsold pool.
func DetectPhase(roster models.PlayerList, minBidR1, minBidR2 int) Phase {
	available := roster.Available()
	if set, ok := available.MinSetPriority(); ok {
		return Phase{
			Round:  Round1,
			Set:    set,
			MinBid: minBidR1,
			Pool:   available.AtSetPriority(set),
		}
	}

	unsold := roster.Unsold()
	var reoffer models.PlayerList
	for _, p := range unsold {
		if p.UnsoldPriority == models.UnsoldPriorityReoffer {
			reoffer = append(reoffer, p)
		}
	}
	if len(reoffer) > 0 {
		return Phase{Round: Round2Priority, MinBid: minBidR2, Pool: reoffer}
	}
	if len(unsold) > 0 {
		return Phase{Round: Round2Standard, MinBid: minBidR2, Pool: unsold}
	}

	return Phase{Round: RoundComplete}
}
