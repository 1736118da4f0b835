package auction

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"

	"github.com/splcricket/auction-bot/internal/models"
	"github.com/splcricket/auction-bot/pkg/logger"
)

// RecordStore is the narrow interface to the shared sheet. ReadAll
// returns the full roster in row order; WriteCell updates a single
// cell addressed by data-row index and column header.
type RecordStore interface {
	ReadAll(ctx context.Context) (models.PlayerList, error)
	WriteCell(ctx context.Context, rowIndex int, column, value string) error
}

// DecisionRecorder receives every sale/no-sale decision for the local
// audit trail. Recording failures are logged, not fatal; the sheet
// remains the system of record.
type DecisionRecorder interface {
	Record(player models.Player, status string, price int, team string) error
}

// Config holds the fixed auction parameters. All of these are set at
// deployment; Defaults() matches the league rules.
type Config struct {
	TotalPurse int
	MinSquad   int
	MaxSquad   int
	MinBidR1   int
	MinBidR2   int
	Teams      []string
}

// Defaults returns the league's standard auction parameters
func Defaults() Config {
	return Config{
		TotalPurse: 100000,
		MinSquad:   18,
		MaxSquad:   25,
		MinBidR1:   1000,
		MinBidR2:   500,
		Teams:      models.Teams,
	}
}

// Snapshot is one consistent read of the auction: the roster, the
// phase derived from it, and every team's standing under that phase's
// minimum bid.
type Snapshot struct {
	Roster    models.PlayerList
	Phase     Phase
	Standings []TeamStanding
}

// Decision is the operator's ruling on the player currently on the
// block. Price and Team are only meaningful for a sale.
type Decision struct {
	Status string // models.StatusSold or models.StatusUnsold
	Price  int
	Team   string
}

// SaleResult reports what a decision did, for operator display
type SaleResult struct {
	Player models.Player
	Status string
	Price  int
	Team   string
}

// Service drives the auction session against the record store. It is
// safe for concurrent use, though the model is a single live
// auctioneer; the lock keeps overlapping Discord handlers from racing
// the on-block pointer.
type Service struct {
	cfg   Config
	store RecordStore
	audit DecisionRecorder
	log   *logger.Logger

	mu      sync.Mutex
	session session
	pick    func(n int) int
}

// NewService creates an auction service. audit may be nil.
func NewService(cfg Config, store RecordStore, audit DecisionRecorder, log *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if len(cfg.Teams) == 0 {
		cfg = Defaults()
	}
	return &Service{
		cfg:   cfg,
		store: store,
		audit: audit,
		log:   log,
		pick:  rand.Intn,
	}, nil
}

// Config returns the fixed auction parameters
func (s *Service) Config() Config {
	return s.cfg
}

// Snapshot reads the roster and derives the current phase and team
// standings from it
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	roster, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	return s.Derive(roster), nil
}

// Derive computes the phase and standings for an already-read roster.
// Used by the view layer to reuse cached reads; money paths always go
// through Snapshot for a fresh one.
func (s *Service) Derive(roster models.PlayerList) *Snapshot {
	phase := DetectPhase(roster, s.cfg.MinBidR1, s.cfg.MinBidR2)
	standings := ComputeStandings(roster, s.cfg.Teams, s.cfg.TotalPurse, s.cfg.MinSquad, s.cfg.MaxSquad, phase.MinBid)
	return &Snapshot{Roster: roster, Phase: phase, Standings: standings}
}

// DrawNext picks a uniformly random player from the current eligible
// pool and puts them on the block. Rejects the draw if a player is
// already up; returns ErrAuctionComplete once every pool is empty.
func (s *Service) DrawNext(ctx context.Context) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Active() {
		return nil, ErrPlayerOnBlock
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Phase.Complete() {
		return nil, ErrAuctionComplete
	}

	chosen := snap.Phase.Pool[s.pick(len(snap.Phase.Pool))]
	s.session.Put(chosen.RowIndex)
	if s.log != nil {
		s.log.Info("On the block: ", chosen.Name, " (", snap.Phase.Label(), ")")
	}
	return &chosen, nil
}

// CurrentPlayer resolves the player on the block against a fresh
// roster read. If the referenced row has vanished the session resets
// to idle and (nil, false) is returned.
func (s *Service) CurrentPlayer(ctx context.Context) (*models.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rowIndex, ok := s.session.Current()
	if !ok {
		return nil, false, nil
	}

	roster, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("reading roster: %w", err)
	}

	player, found := roster.FindByRowIndex(rowIndex)
	if !found {
		s.session.Reset()
		if s.log != nil {
			s.log.Warn("Player on the block vanished from the roster, resetting session")
		}
		return nil, false, nil
	}
	return player, true, nil
}

// SubmitDecision rules on the player currently on the block. A sale is
// validated against the phase minimum and the buying team's max bid,
// then written to the sheet; a no-sale marks the player Unsold and
// leaves price and team untouched. The block only clears after the
// status write is confirmed.
func (s *Service) SubmitDecision(ctx context.Context, d Decision) (*SaleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rowIndex, ok := s.session.Current()
	if !ok {
		return nil, ErrNoPlayerOnBlock
	}

	roster, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	player, found := roster.FindByRowIndex(rowIndex)
	if !found {
		s.session.Reset()
		return nil, ErrStalePlayer
	}

	switch d.Status {
	case models.StatusSold:
		return s.sell(ctx, roster, *player, d.Price, d.Team)
	case models.StatusUnsold:
		return s.markUnsold(ctx, *player)
	default:
		return nil, fmt.Errorf("unknown decision status %q", d.Status)
	}
}

func (s *Service) sell(ctx context.Context, roster models.PlayerList, player models.Player, price int, teamName string) (*SaleResult, error) {
	team, ok := models.NormalizeTeam(teamName)
	if !ok {
		return nil, ErrUnknownTeam
	}

	snap := s.Derive(roster)
	standing, ok := StandingFor(snap.Standings, team)
	if !ok {
		return nil, ErrUnknownTeam
	}
	if err := ValidateBid(price, snap.Phase.MinBid, standing); err != nil {
		return nil, err
	}

	// Status first: if any write fails the block stays held and the
	// operator retries after fixing connectivity.
	if err := s.store.WriteCell(ctx, player.RowIndex, models.ColStatus, models.StatusSold); err != nil {
		return nil, fmt.Errorf("recording sale status: %w", err)
	}
	if err := s.store.WriteCell(ctx, player.RowIndex, models.ColSoldPrice, strconv.Itoa(price)); err != nil {
		return nil, fmt.Errorf("recording sale price: %w", err)
	}
	if err := s.store.WriteCell(ctx, player.RowIndex, models.ColTeamName, team); err != nil {
		return nil, fmt.Errorf("recording buying team: %w", err)
	}

	s.recordDecision(player, models.StatusSold, price, team)
	s.session.Reset()
	if s.log != nil {
		s.log.Info("SOLD: ", player.Name, " to ", team, " for ", price)
	}
	return &SaleResult{Player: player, Status: models.StatusSold, Price: price, Team: team}, nil
}

func (s *Service) markUnsold(ctx context.Context, player models.Player) (*SaleResult, error) {
	if err := s.store.WriteCell(ctx, player.RowIndex, models.ColStatus, models.StatusUnsold); err != nil {
		return nil, fmt.Errorf("recording unsold status: %w", err)
	}

	s.recordDecision(player, models.StatusUnsold, 0, "")
	s.session.Reset()
	if s.log != nil {
		s.log.Info("UNSOLD: ", player.Name)
	}
	return &SaleResult{Player: player, Status: models.StatusUnsold}, nil
}

func (s *Service) recordDecision(player models.Player, status string, price int, team string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(player, status, price, team); err != nil && s.log != nil {
		s.log.Error("Failed to record decision in audit log: ", err)
	}
}
