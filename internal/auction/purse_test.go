package auction

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splcricket/auction-bot/internal/models"
)

const (
	testTotalPurse = 100000
	testMinSquad   = 18
	testMaxSquad   = 25
)

func soldSquad(team string, count, pricePer int) models.PlayerList {
	var roster models.PlayerList
	for i := 0; i < count; i++ {
		roster = append(roster, soldPlayer(fmt.Sprintf("%s player %d", team, i), team, pricePer))
	}
	return roster
}

func computeFor(t *testing.T, roster models.PlayerList, minBid int, team string) TeamStanding {
	t.Helper()
	standings := ComputeStandings(roster, models.Teams, testTotalPurse, testMinSquad, testMaxSquad, minBid)
	standing, ok := StandingFor(standings, team)
	require.True(t, ok)
	return standing
}

func TestEmptySquadReservesForMandatorySlots(t *testing.T) {
	// 0 players, full purse, round-1 min bid: reserve 17 slots at 1000
	standing := computeFor(t, models.PlayerList{availablePlayer("Kohli", 1)}, 1000, "CSK")

	assert.Equal(t, 0, standing.Spent)
	assert.Equal(t, 0, standing.Count)
	assert.Equal(t, testTotalPurse, standing.PurseLeft)
	assert.Equal(t, 83000, standing.MaxBid)
	assert.False(t, standing.Full)
}

func TestMinimumSquadMetSpendsEverything(t *testing.T) {
	roster := soldSquad("MI", 17, 0)
	roster = append(roster, soldPlayer("MI keeper", "MI", 5000))

	standing := computeFor(t, roster, 1000, "MI")

	assert.Equal(t, 18, standing.Count)
	assert.Equal(t, 5000, standing.Spent)
	assert.Equal(t, 95000, standing.MaxBid)
}

func TestFullSquadCannotBid(t *testing.T) {
	roster := soldSquad("KKR", 25, 100)

	standing := computeFor(t, roster, 1000, "KKR")

	assert.Equal(t, 0, standing.MaxBid)
	assert.True(t, standing.Full)
	assert.False(t, standing.CanBid())
}

func TestMaxBidCanGoNegative(t *testing.T) {
	// Two players bought for nearly the whole purse: the reserve for
	// the 16 remaining mandatory slots pushes the max bid below zero
	roster := soldSquad("RCB", 2, 49000)

	standing := computeFor(t, roster, 1000, "RCB")

	assert.Equal(t, 2000, standing.PurseLeft)
	assert.Equal(t, 2000-15*1000, standing.MaxBid)
	assert.Negative(t, standing.MaxBid)
	assert.False(t, standing.CanBid())
}

func TestMaxBidMonotonicInSpend(t *testing.T) {
	prev := testTotalPurse + 1
	for spent := 0; spent <= 80000; spent += 20000 {
		roster := models.PlayerList{soldPlayer("CSK star", "CSK", spent)}
		standing := computeFor(t, roster, 1000, "CSK")
		assert.Less(t, standing.MaxBid, prev)
		prev = standing.MaxBid
	}
}

func TestTeamsWithNoPurchasesGetZeroedStats(t *testing.T) {
	standings := ComputeStandings(nil, models.Teams, testTotalPurse, testMinSquad, testMaxSquad, 500)

	require.Len(t, standings, len(models.Teams))
	for _, s := range standings {
		assert.Equal(t, 0, s.Spent)
		assert.Equal(t, 0, s.Count)
		assert.Equal(t, testTotalPurse, s.PurseLeft)
	}
}
