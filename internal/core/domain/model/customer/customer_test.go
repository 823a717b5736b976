package customer_test

import (
	"testing"

	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer with empty account", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "Alice")

		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.True(t, c.Balance().IsZero())
		assert.True(t, c.TotalSpent().IsZero())
		assert.Equal(t, 0, c.OrderCount())
		assert.Equal(t, 0, c.WarningCount())
		assert.False(t, c.IsVip())
		assert.False(t, c.IsBlacklisted())
		assert.Equal(t, 1, c.Version())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "")

		assert.ErrorIs(t, err, customer.ErrNameIsRequired)
	})

	t.Run("should return error for zero UUID", func(t *testing.T) {
		var id kernel.UUID

		_, err := customer.NewCustomer(id, "Alice")

		assert.Error(t, err)
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		var id kernel.UUID

		_, err := customer.NewCustomer(id, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, customer.ErrNameIsRequired)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore customer state", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.RestoreCustomer(
			id, "Bob",
			mustMoney(t, "43.00"), mustMoney(t, "157.00"),
			2, 1, true, false, 7,
		)

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "43.00", c.Balance().String())
		assert.Equal(t, "157.00", c.TotalSpent().String())
		assert.Equal(t, 2, c.OrderCount())
		assert.Equal(t, 1, c.WarningCount())
		assert.True(t, c.IsVip())
		assert.False(t, c.IsBlacklisted())
		assert.Equal(t, 7, c.Version())
	})

	t.Run("should reject negative counters", func(t *testing.T) {
		_, err := customer.RestoreCustomer(
			kernel.NewUUID(), "Bob",
			kernel.ZeroMoney(), kernel.ZeroMoney(),
			-1, -1, false, false, 1,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderCount")
		assert.Contains(t, err.Error(), "warningCount")
	})

	t.Run("should reject version below one", func(t *testing.T) {
		_, err := customer.RestoreCustomer(
			kernel.NewUUID(), "Bob",
			kernel.ZeroMoney(), kernel.ZeroMoney(),
			0, 0, false, false, 0,
		)

		assert.Error(t, err)
	})
}

func TestCustomerValidate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var c customer.Customer

		assert.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})

	t.Run("nil customer should fail validation", func(t *testing.T) {
		var c *customer.Customer

		assert.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomerDeposit(t *testing.T) {
	t.Run("should credit the balance", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		require.NoError(t, c.Deposit(mustMoney(t, "50.00")))
		require.NoError(t, c.Deposit(mustMoney(t, "25.50")))

		assert.Equal(t, "75.50", c.Balance().String())
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		err = c.Deposit(kernel.ZeroMoney())

		assert.ErrorIs(t, err, customer.ErrInvalidAmount)
		assert.True(t, c.Balance().IsZero())
	})

	t.Run("should allow deposits for blacklisted customers", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		for i := 0; i < customer.BlacklistWarningLimit; i++ {
			require.NoError(t, c.AddWarning())
		}
		require.True(t, c.IsBlacklisted())

		err = c.Deposit(mustMoney(t, "10.00"))

		require.NoError(t, err)
		assert.Equal(t, "10.00", c.Balance().String())
	})
}

func TestCustomerChargeForOrder(t *testing.T) {
	t.Run("should debit balance and update statistics", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "100.00")))

		err = c.ChargeForOrder(mustMoney(t, "57.00"))

		require.NoError(t, err)
		assert.Equal(t, "43.00", c.Balance().String())
		assert.Equal(t, "57.00", c.TotalSpent().String())
		assert.Equal(t, 1, c.OrderCount())
	})

	t.Run("should allow charging the exact balance", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "60.00")))

		err = c.ChargeForOrder(mustMoney(t, "60.00"))

		require.NoError(t, err)
		assert.True(t, c.Balance().IsZero())
	})

	t.Run("should refuse charge exceeding balance and leave state untouched", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "50.00")))

		err = c.ChargeForOrder(mustMoney(t, "60.00"))

		assert.ErrorIs(t, err, customer.ErrInsufficientFunds)
		assert.Equal(t, "50.00", c.Balance().String())
		assert.True(t, c.TotalSpent().IsZero())
		assert.Equal(t, 0, c.OrderCount())
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		err = c.ChargeForOrder(kernel.ZeroMoney())

		assert.ErrorIs(t, err, customer.ErrInvalidAmount)
	})
}

func TestCustomerVipStatus(t *testing.T) {
	t.Run("should grant VIP when total spend crosses the threshold", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "200.00")))

		require.NoError(t, c.ChargeForOrder(mustMoney(t, "95.00")))
		assert.False(t, c.IsVip())

		require.NoError(t, c.ChargeForOrder(mustMoney(t, "10.00")))
		assert.True(t, c.IsVip())
		assert.Equal(t, "105.00", c.TotalSpent().String())
	})

	t.Run("should grant VIP at exactly the spend threshold", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "100.00")))

		require.NoError(t, c.ChargeForOrder(mustMoney(t, "100.00")))

		assert.True(t, c.IsVip())
	})

	t.Run("should grant VIP on the third successful order", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "30.00")))

		require.NoError(t, c.ChargeForOrder(mustMoney(t, "5.00")))
		require.NoError(t, c.ChargeForOrder(mustMoney(t, "5.00")))
		assert.False(t, c.IsVip())

		require.NoError(t, c.ChargeForOrder(mustMoney(t, "5.00")))
		assert.True(t, c.IsVip())
	})

	t.Run("should not count failed charges toward VIP", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "10.00")))

		for i := 0; i < 5; i++ {
			assert.ErrorIs(t, c.ChargeForOrder(mustMoney(t, "20.00")), customer.ErrInsufficientFunds)
		}

		assert.False(t, c.IsVip())
		assert.Equal(t, 0, c.OrderCount())
	})

	t.Run("status read before the charge reflects the pre-upgrade rate", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		require.NoError(t, c.Deposit(mustMoney(t, "150.00")))

		wasVip := c.IsVip()
		require.NoError(t, c.ChargeForOrder(mustMoney(t, "120.00")))

		assert.False(t, wasVip)
		assert.True(t, c.IsVip())
	})
}

func TestCustomerWarnings(t *testing.T) {
	t.Run("should blacklist after reaching the warning limit", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		for i := 0; i < customer.BlacklistWarningLimit; i++ {
			assert.False(t, c.IsBlacklisted(), "blacklisted too early at warning %d", i)
			require.NoError(t, c.AddWarning())
		}

		assert.True(t, c.IsBlacklisted())
		assert.Equal(t, customer.BlacklistWarningLimit, c.WarningCount())
	})

	t.Run("should block ordering once blacklisted", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		require.NoError(t, c.EnsureCanOrder())

		for i := 0; i < customer.BlacklistWarningLimit; i++ {
			require.NoError(t, c.AddWarning())
		}

		assert.ErrorIs(t, c.EnsureCanOrder(), customer.ErrCustomerBlacklisted)
	})
}

func TestCustomerIsEqual(t *testing.T) {
	t.Run("should compare by identifier only", func(t *testing.T) {
		id := kernel.NewUUID()
		c1, err := customer.NewCustomer(id, "Alice")
		require.NoError(t, err)
		c2, err := customer.NewCustomer(id, "Bob")
		require.NoError(t, err)
		c3, err := customer.NewCustomer(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		assert.True(t, c1.IsEqual(c2))
		assert.False(t, c1.IsEqual(c3))
		assert.False(t, c1.IsEqual(nil))
	})
}
