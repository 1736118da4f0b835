package auction

import "errors"

var (
	// ErrAuctionComplete is returned when a draw is requested but every
	// pool has been exhausted
	ErrAuctionComplete = errors.New("auction complete: no players left to offer")

	// ErrPlayerOnBlock is returned when a draw is requested while a
	// player is already up for bidding
	ErrPlayerOnBlock = errors.New("a player is already on the block")

	// ErrNoPlayerOnBlock is returned when a decision is submitted with
	// no active draw
	ErrNoPlayerOnBlock = errors.New("no player is on the block")

	// ErrStalePlayer is returned when the player on the block is no
	// longer present in the roster
	ErrStalePlayer = errors.New("player on the block is no longer in the roster")

	// ErrBidTooLow is returned when a bid is below the current phase's
	// minimum
	ErrBidTooLow = errors.New("bid too low")

	// ErrBidExceedsMax is returned when a bid is above the buying
	// team's maximum legal bid
	ErrBidExceedsMax = errors.New("bid exceeds team's max bid")

	// ErrUnknownTeam is returned for a team outside the fixed set
	ErrUnknownTeam = errors.New("unknown team")

	ErrNilStore = errors.New("record store cannot be nil")
)
