package auction

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/splcricket/auction-bot/internal/models"
)

type cellWrite struct {
	RowIndex int
	Column   string
	Value    string
}

// fakeStore is an in-memory RecordStore. Writes apply to the roster so
// later reads observe them, like the real sheet.
type fakeStore struct {
	roster   models.PlayerList
	writes   []cellWrite
	readErr  error
	writeErr error
	// failFrom fails the Nth write onward (1-based); 0 disables
	failFrom int
}

func (f *fakeStore) ReadAll(ctx context.Context) (models.PlayerList, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make(models.PlayerList, len(f.roster))
	copy(out, f.roster)
	return out, nil
}

func (f *fakeStore) WriteCell(ctx context.Context, rowIndex int, column, value string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if f.failFrom > 0 && len(f.writes)+1 >= f.failFrom {
		return errors.New("write failed")
	}
	f.writes = append(f.writes, cellWrite{RowIndex: rowIndex, Column: column, Value: value})

	for i := range f.roster {
		if f.roster[i].RowIndex != rowIndex {
			continue
		}
		switch column {
		case models.ColStatus:
			f.roster[i].Status = value
		case models.ColSoldPrice:
			if price, err := strconv.Atoi(value); err == nil {
				f.roster[i].SoldPrice = price
			}
		case models.ColTeamName:
			f.roster[i].TeamName = value
		}
	}
	return nil
}

type recordedDecision struct {
	Player models.Player
	Status string
	Price  int
	Team   string
}

type fakeAudit struct {
	decisions []recordedDecision
	err       error
}

func (f *fakeAudit) Record(player models.Player, status string, price int, team string) error {
	if f.err != nil {
		return f.err
	}
	f.decisions = append(f.decisions, recordedDecision{player, status, price, team})
	return nil
}

type ServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *fakeStore
	audit *fakeAudit
	svc   *Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = &fakeStore{
		roster: models.PlayerList{
			withRow(availablePlayer("Kohli", 1), 0),
			withRow(availablePlayer("Dhoni", 1), 1),
			withRow(availablePlayer("Gill", 2), 2),
			withRow(unsoldPlayer("Rahane", models.UnsoldPriorityReoffer), 3),
		},
	}
	s.audit = &fakeAudit{}

	svc, err := NewService(Defaults(), s.store, s.audit, nil)
	s.Require().NoError(err)
	svc.pick = func(n int) int { return 0 } // deterministic draws
	s.svc = svc
}

func withRow(p models.Player, rowIndex int) models.Player {
	p.RowIndex = rowIndex
	return p
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestNewServiceRequiresStore() {
	_, err := NewService(Defaults(), nil, nil, nil)
	s.ErrorIs(err, ErrNilStore)
}

func (s *ServiceTestSuite) TestDrawNextPicksFromEligiblePool() {
	player, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	// Pool is set 1 only; pick(2)==0 lands on Kohli
	s.Equal("Kohli", player.Name)

	current, active, err := s.svc.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.True(active)
	s.Equal("Kohli", current.Name)
}

func (s *ServiceTestSuite) TestDrawNextRejectedWhileActive() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	_, err = s.svc.DrawNext(s.ctx)
	s.ErrorIs(err, ErrPlayerOnBlock)
}

func (s *ServiceTestSuite) TestDrawNextAuctionComplete() {
	s.store.roster = models.PlayerList{withRow(soldPlayer("Kohli", "RCB", 5000), 0)}

	_, err := s.svc.DrawNext(s.ctx)
	s.ErrorIs(err, ErrAuctionComplete)
}

func (s *ServiceTestSuite) TestDrawNextSurfacesReadFailure() {
	s.store.readErr = errors.New("connection refused")

	_, err := s.svc.DrawNext(s.ctx)
	s.Error(err)
	s.False(s.svc.session.Active())
}

func (s *ServiceTestSuite) TestSellWritesAndClearsBlock() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	result, err := s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  1500,
		Team:   "csk",
	})
	s.Require().NoError(err)

	s.Equal("Kohli", result.Player.Name)
	s.Equal("CSK", result.Team)
	s.Equal(1500, result.Price)

	s.Require().Len(s.store.writes, 3)
	s.Equal(cellWrite{0, models.ColStatus, models.StatusSold}, s.store.writes[0])
	s.Equal(cellWrite{0, models.ColSoldPrice, "1500"}, s.store.writes[1])
	s.Equal(cellWrite{0, models.ColTeamName, "CSK"}, s.store.writes[2])

	_, active, err := s.svc.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.False(active)

	s.Require().Len(s.audit.decisions, 1)
	s.Equal(models.StatusSold, s.audit.decisions[0].Status)
}

func (s *ServiceTestSuite) TestSellRejectedBelowMinimum() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	_, err = s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  0,
		Team:   "CSK",
	})
	s.ErrorIs(err, ErrBidTooLow)

	// Roster untouched, player still on the block
	s.Empty(s.store.writes)
	_, active, err := s.svc.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.True(active)
}

func (s *ServiceTestSuite) TestSellRejectedOverMaxBid() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	// Fresh team in round 1: max bid is 83000
	_, err = s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  83001,
		Team:   "MI",
	})
	s.ErrorIs(err, ErrBidExceedsMax)
	s.Empty(s.store.writes)
}

func (s *ServiceTestSuite) TestSellRejectedUnknownTeam() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	_, err = s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  1500,
		Team:   "GT",
	})
	s.ErrorIs(err, ErrUnknownTeam)
}

func (s *ServiceTestSuite) TestSellWithoutDraw() {
	_, err := s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  1500,
		Team:   "CSK",
	})
	s.ErrorIs(err, ErrNoPlayerOnBlock)
}

func (s *ServiceTestSuite) TestFailedWriteKeepsPlayerOnBlock() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	s.store.writeErr = errors.New("quota exceeded")
	_, err = s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  1500,
		Team:   "CSK",
	})
	s.Error(err)

	// Block held: the operator retries once connectivity is back
	_, active, cerr := s.svc.CurrentPlayer(s.ctx)
	s.Require().NoError(cerr)
	s.True(active)

	s.store.writeErr = nil
	_, err = s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  1500,
		Team:   "CSK",
	})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestPartialWriteFailureSurfaces() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	s.store.failFrom = 2 // status lands, price write fails
	_, err = s.svc.SubmitDecision(s.ctx, Decision{
		Status: models.StatusSold,
		Price:  1500,
		Team:   "CSK",
	})
	s.Error(err)
	s.True(s.svc.session.Active())
}

func (s *ServiceTestSuite) TestUnsoldWritesStatusOnly() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	result, err := s.svc.SubmitDecision(s.ctx, Decision{Status: models.StatusUnsold, Price: 99999, Team: "CSK"})
	s.Require().NoError(err)
	s.Equal(models.StatusUnsold, result.Status)

	// Only the status cell changes, whatever was typed in the bid box
	s.Require().Len(s.store.writes, 1)
	s.Equal(cellWrite{0, models.ColStatus, models.StatusUnsold}, s.store.writes[0])

	player, _ := s.store.roster.FindByRowIndex(0)
	s.Equal(0, player.SoldPrice)
	s.Empty(player.TeamName)
	s.Equal(models.DefaultUnsoldPriority, player.UnsoldPriority)
}

func (s *ServiceTestSuite) TestUnsoldAgainKeepsReofferPriority() {
	// Exhaust round 1 so the priority re-offer pool is live
	s.store.roster = models.PlayerList{
		withRow(soldPlayer("Kohli", "RCB", 5000), 0),
		withRow(unsoldPlayer("Rahane", models.UnsoldPriorityReoffer), 1),
	}

	player, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)
	s.Equal("Rahane", player.Name)

	_, err = s.svc.SubmitDecision(s.ctx, Decision{Status: models.StatusUnsold})
	s.Require().NoError(err)

	got, _ := s.store.roster.FindByRowIndex(1)
	s.Equal(models.StatusUnsold, got.Status)
	s.Equal(models.UnsoldPriorityReoffer, got.UnsoldPriority)
	s.Equal(0, got.SoldPrice)
	s.Empty(got.TeamName)
}

func (s *ServiceTestSuite) TestStaleBlockResetsSession() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	// The on-block row disappears from the sheet
	s.store.roster = s.store.roster[1:]

	_, err = s.svc.SubmitDecision(s.ctx, Decision{Status: models.StatusSold, Price: 1500, Team: "CSK"})
	s.ErrorIs(err, ErrStalePlayer)
	s.False(s.svc.session.Active())
}

func (s *ServiceTestSuite) TestCurrentPlayerResetsWhenRowVanishes() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	s.store.roster = s.store.roster[1:]

	player, active, err := s.svc.CurrentPlayer(s.ctx)
	s.Require().NoError(err)
	s.False(active)
	s.Nil(player)
}

func (s *ServiceTestSuite) TestAuditFailureDoesNotFailSale() {
	_, err := s.svc.DrawNext(s.ctx)
	s.Require().NoError(err)

	s.audit.err = errors.New("disk full")
	_, err = s.svc.SubmitDecision(s.ctx, Decision{Status: models.StatusSold, Price: 1500, Team: "CSK"})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestSnapshotDerivesPhaseAndStandings() {
	s.store.roster = append(s.store.roster, withRow(soldPlayer("Jadeja", "CSK", 7000), 4))

	snap, err := s.svc.Snapshot(s.ctx)
	s.Require().NoError(err)

	s.Equal(Round1, snap.Phase.Round)
	standing, ok := StandingFor(snap.Standings, "CSK")
	s.Require().True(ok)
	s.Equal(7000, standing.Spent)
	s.Equal(1, standing.Count)
	s.Equal(93000, standing.PurseLeft)
}
