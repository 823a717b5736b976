package kernel_test

import (
	"testing"

	"cctexpress/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from valid decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.New(1050, -2))

		require.NoError(t, err)
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.New(-1, -2))

		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})

	t.Run("should reject sub-cent precision", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.New(10005, -3)) // 10.005

		assert.ErrorIs(t, err, kernel.ErrMoneyScaleExceeded)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100.00"},
			{"100", "100.00"},
			{"0.05", "0.05"},
			{"57", "57.00"},
			{"10.5", "10.50"},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoneyFromString(tc.input)
			require.NoError(t, err, "input: %s", tc.input)
			assert.Equal(t, tc.expected, m.String())
		}
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		for _, input := range []string{"", "abc", "10,50", "1.2.3"} {
			_, err := kernel.NewMoneyFromString(input)
			assert.Error(t, err, "input: %s", input)
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-10.00")

		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})

	t.Run("should reject more than two decimal places", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("10.005")

		assert.ErrorIs(t, err, kernel.ErrMoneyScaleExceeded)
	})
}

func TestMoneyZeroValue(t *testing.T) {
	t.Run("zero value should be a valid 0.00", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
		assert.Equal(t, "0.00", m.String())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})
}

func TestMoneyArithmetic(t *testing.T) {
	mustMoney := func(s string) kernel.Money {
		m, err := kernel.NewMoneyFromString(s)
		require.NoError(t, err)
		return m
	}

	t.Run("should add amounts", func(t *testing.T) {
		sum := mustMoney("10.50").Add(mustMoney("4.50"))

		assert.Equal(t, "15.00", sum.String())
	})

	t.Run("should subtract smaller amount", func(t *testing.T) {
		remaining, err := mustMoney("100.00").Sub(mustMoney("57.00"))

		require.NoError(t, err)
		assert.Equal(t, "43.00", remaining.String())
	})

	t.Run("should subtract to exactly zero", func(t *testing.T) {
		remaining, err := mustMoney("57.00").Sub(mustMoney("57.00"))

		require.NoError(t, err)
		assert.True(t, remaining.IsZero())
	})

	t.Run("should refuse subtraction below zero", func(t *testing.T) {
		_, err := mustMoney("50.00").Sub(mustMoney("60.00"))

		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})

	t.Run("should multiply by integer factor", func(t *testing.T) {
		total, err := mustMoney("12.50").MulInt(3)

		require.NoError(t, err)
		assert.Equal(t, "37.50", total.String())
	})

	t.Run("should multiply by zero factor", func(t *testing.T) {
		total, err := mustMoney("12.50").MulInt(0)

		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("should reject negative factor", func(t *testing.T) {
		_, err := mustMoney("12.50").MulInt(-1)

		assert.Error(t, err)
	})

	t.Run("should apply rate without rounding when exact", func(t *testing.T) {
		final, err := mustMoney("60.00").MulRate(decimal.New(95, -2))

		require.NoError(t, err)
		assert.Equal(t, "57.00", final.String())
	})

	t.Run("should round half-up when rate produces sub-cent result", func(t *testing.T) {
		// 10.10 * 0.95 = 9.595, which rounds up to 9.60
		final, err := mustMoney("10.10").MulRate(decimal.New(95, -2))

		require.NoError(t, err)
		assert.Equal(t, "9.60", final.String())
	})

	t.Run("should round half-up on exact midpoint", func(t *testing.T) {
		// 0.10 * 0.95 = 0.095, the midpoint between 0.09 and 0.10
		final, err := mustMoney("0.10").MulRate(decimal.New(95, -2))

		require.NoError(t, err)
		assert.Equal(t, "0.10", final.String())
	})

	t.Run("should reject negative rate", func(t *testing.T) {
		_, err := mustMoney("10.00").MulRate(decimal.New(-95, -2))

		assert.Error(t, err)
	})
}

func TestMoneyComparisons(t *testing.T) {
	mustMoney := func(s string) kernel.Money {
		m, err := kernel.NewMoneyFromString(s)
		require.NoError(t, err)
		return m
	}

	t.Run("should compare greater or equal", func(t *testing.T) {
		assert.True(t, mustMoney("100.00").GreaterOrEqual(mustMoney("60.00")))
		assert.True(t, mustMoney("60.00").GreaterOrEqual(mustMoney("60.00")))
		assert.False(t, mustMoney("50.00").GreaterOrEqual(mustMoney("60.00")))
	})

	t.Run("should compare less than", func(t *testing.T) {
		assert.True(t, mustMoney("8.00").LessThan(mustMoney("10.00")))
		assert.False(t, mustMoney("10.00").LessThan(mustMoney("10.00")))
		assert.False(t, mustMoney("12.00").LessThan(mustMoney("10.00")))
	})

	t.Run("should treat different scales as equal amounts", func(t *testing.T) {
		assert.True(t, mustMoney("10.5").IsEqual(mustMoney("10.50")))
	})
}
