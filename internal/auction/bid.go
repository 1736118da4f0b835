package auction

// ValidateBid checks a proposed price against the phase minimum and the
// buying team's max bid. The minimum-bid check runs first so rejection
// reasons are deterministic. A negative max bid means the team is
// over-reserved and is clamped to zero here, so any positive price is
// rejected.
func ValidateBid(price, phaseMinBid int, standing TeamStanding) error {
	if price < phaseMinBid {
		return ErrBidTooLow
	}

	maxBid := standing.MaxBid
	if maxBid < 0 {
		maxBid = 0
	}
	if price > maxBid {
		return ErrBidExceedsMax
	}

	return nil
}
