package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBidBelowMinimum(t *testing.T) {
	standing := TeamStanding{Team: "CSK", MaxBid: 50000}

	err := ValidateBid(0, 1000, standing)
	assert.ErrorIs(t, err, ErrBidTooLow)

	err = ValidateBid(999, 1000, standing)
	assert.ErrorIs(t, err, ErrBidTooLow)
}

func TestValidateBidMinimumCheckedFirst(t *testing.T) {
	// Below both limits: the minimum-bid failure wins deterministically
	standing := TeamStanding{Team: "CSK", MaxBid: 200}

	err := ValidateBid(500, 1000, standing)
	assert.ErrorIs(t, err, ErrBidTooLow)
}

func TestValidateBidExceedsMax(t *testing.T) {
	standing := TeamStanding{Team: "MI", MaxBid: 5000}

	err := ValidateBid(5001, 1000, standing)
	assert.ErrorIs(t, err, ErrBidExceedsMax)
}

func TestValidateBidNegativeMaxClampedToZero(t *testing.T) {
	standing := TeamStanding{Team: "RCB", MaxBid: -13000}

	err := ValidateBid(1000, 1000, standing)
	assert.ErrorIs(t, err, ErrBidExceedsMax)
}

func TestValidateBidAccepts(t *testing.T) {
	standing := TeamStanding{Team: "KKR", MaxBid: 83000}

	assert.NoError(t, ValidateBid(1000, 1000, standing))
	assert.NoError(t, ValidateBid(83000, 1000, standing))
}
