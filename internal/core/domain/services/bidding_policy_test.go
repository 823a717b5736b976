package services_test

import (
	"testing"
	"time"

	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredBid(t *testing.T, amount string, createdAt time.Time) *bid.Bid {
	t.Helper()
	b, err := bid.RestoreBid(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		mustMoney(t, amount), false, createdAt,
	)
	require.NoError(t, err)
	return b
}

func TestLowestBidPolicySelect(t *testing.T) {
	policy := services.NewLowestBidPolicy()
	now := time.Now().UTC()

	t.Run("should pick the lowest amount", func(t *testing.T) {
		cheap := restoredBid(t, "8.00", now)
		pricey := restoredBid(t, "10.00", now.Add(-time.Minute))

		winner, err := policy.Select([]*bid.Bid{pricey, cheap})

		require.NoError(t, err)
		assert.True(t, winner.IsEqual(cheap))
	})

	t.Run("should break amount ties by earliest submission", func(t *testing.T) {
		later := restoredBid(t, "8.00", now)
		earlier := restoredBid(t, "8.00", now.Add(-time.Minute))

		winner, err := policy.Select([]*bid.Bid{later, earlier})

		require.NoError(t, err)
		assert.True(t, winner.IsEqual(earlier))
	})

	t.Run("should handle a single bid", func(t *testing.T) {
		only := restoredBid(t, "12.00", now)

		winner, err := policy.Select([]*bid.Bid{only})

		require.NoError(t, err)
		assert.True(t, winner.IsEqual(only))
	})

	t.Run("should return ErrNoBids for an empty list", func(t *testing.T) {
		_, err := policy.Select(nil)

		assert.ErrorIs(t, err, services.ErrNoBids)
	})

	t.Run("should fail on unconstructed bid", func(t *testing.T) {
		var broken bid.Bid

		_, err := policy.Select([]*bid.Bid{&broken})

		assert.ErrorIs(t, err, bid.ErrBidIsNotConstructed)
	})
}
