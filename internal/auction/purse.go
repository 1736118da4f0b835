package auction

import "github.com/splcricket/auction-bot/internal/models"

// TeamStanding is a team's derived purse position. Recomputed from the
// full roster on every read; nothing here is persisted.
type TeamStanding struct {
	Team      string
	Spent     int
	Count     int
	PurseLeft int

	// MaxBid is the largest price the team may legally offer given its
	// purse and the slots it still has to fill at the current phase's
	// minimum bid. Can go negative when a team is over-reserved; treat
	// anything below zero as "cannot bid".
	MaxBid int

	Full bool
}

// CanBid reports whether the team may place any bid at all
func (ts TeamStanding) CanBid() bool {
	return !ts.Full && ts.MaxBid > 0
}

// ComputeStandings derives every team's spend, squad count, remaining
// purse, and max legal bid from the roster. minBid is the current
// phase's minimum, used to reserve purse for unfilled mandatory slots.
func ComputeStandings(roster models.PlayerList, teams []string, totalPurse, minSquad, maxSquad, minBid int) []TeamStanding {
	spent := make(map[string]int, len(teams))
	count := make(map[string]int, len(teams))
	for _, p := range roster.Sold() {
		spent[p.TeamName] += p.SoldPrice
		count[p.TeamName]++
	}

	standings := make([]TeamStanding, 0, len(teams))
	for _, team := range teams {
		s := TeamStanding{
			Team:      team,
			Spent:     spent[team],
			Count:     count[team],
			PurseLeft: totalPurse - spent[team],
		}

		needed := minSquad - s.Count
		if needed < 0 {
			needed = 0
		}

		switch {
		case s.Count >= maxSquad:
			s.MaxBid = 0
			s.Full = true
		case s.Count >= minSquad:
			s.MaxBid = s.PurseLeft
		default:
			s.MaxBid = s.PurseLeft - (needed-1)*minBid
		}

		standings = append(standings, s)
	}
	return standings
}

// StandingFor looks up one team's standing by canonical name
func StandingFor(standings []TeamStanding, team string) (TeamStanding, bool) {
	for _, s := range standings {
		if s.Team == team {
			return s, true
		}
	}
	return TeamStanding{}, false
}
