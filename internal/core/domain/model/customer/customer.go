package customer

import (
	"errors"
	"fmt"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/errs"
	"cctexpress/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// VipOrderCountThreshold is the number of successful orders that grants VIP status.
	VipOrderCountThreshold = 3
	// BlacklistWarningLimit is the number of warnings after which a customer is blacklisted.
	BlacklistWarningLimit = 3
)

// VipSpendThreshold is the total spend that grants VIP status, 100.00 in account currency.
var VipSpendThreshold = decimal.New(10000, -2)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrInvalidAmount is returned when a deposit or charge amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds is returned when the account balance cannot cover an order charge.
	ErrInsufficientFunds = errors.New("insufficient funds on account balance")
	// ErrCustomerBlacklisted is returned when a blacklisted customer attempts to place an order.
	ErrCustomerBlacklisted = errors.New("customer is blacklisted")
)

// Customer represents an account holder in the ordering system.
// It is an aggregate root that manages the prepaid balance, spending statistics,
// the VIP loyalty status and the warning counter that feeds the blacklist.
//
// Key responsibilities:
//   - Managing customer identity (ID, name)
//   - Accepting deposits and charging order amounts against the balance
//   - Tracking total spend and the count of successfully placed orders
//   - Granting the VIP status once a loyalty threshold is reached
//   - Accumulating warnings for failed order attempts and enforcing the blacklist
//
// Business rules:
//   - The balance is never negative; a charge that would overdraw it is refused
//   - Total spend and order count only ever grow, and only on successful charges
//   - VIP status is monotonic: once granted it survives any later activity
//   - The charge that lifts a customer over a VIP threshold is itself priced
//     at the pre-upgrade rate, because status is re-evaluated only after the
//     charge has been applied
//
// Example usage:
//
//	customer, err := NewCustomer(kernel.NewUUID(), "Alice")
//	if err != nil {
//	    // Handle construction error
//	}
//	// Customer is ready to receive deposits and place orders
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the human-readable name of the customer
	name string
	// balance is the current prepaid account balance
	balance kernel.Money
	// totalSpent is the cumulative amount of all successful order charges
	totalSpent kernel.Money
	// orderCount is the number of successfully placed orders
	orderCount int
	// vip marks whether the customer has earned the VIP loyalty status
	vip bool
	// warningCount is the number of warnings issued for failed order attempts
	warningCount int
	// blacklisted marks whether the customer is blocked from placing orders
	blacklisted bool
	// version supports optimistic concurrency control in persistence
	version int
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with an empty account.
// The identifier is supplied by the caller because customer identity
// originates outside this service (the sign-up flow mints it).
//
// Parameters:
//   - id: Unique identifier for the customer (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//
// Returns:
//   - *Customer: A fully initialized customer with zero balance and no history
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	customer, err := NewCustomer(kernel.NewUUID(), "Alice")
//	if err != nil {
//	    log.Fatal("Failed to create customer:", err)
//	}
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	customer := &Customer{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage.
// Unlike NewCustomer which creates fresh accounts, this constructor restores
// a customer to a previously persisted state including balance, spending
// statistics, loyalty status and the warning counter.
//
// Parameters:
//   - id: Unique identifier for the customer
//   - name: Human-readable customer name
//   - balance: Current prepaid balance
//   - totalSpent: Cumulative spend over all successful orders
//   - orderCount: Number of successfully placed orders
//   - warningCount: Number of warnings issued so far
//   - vip: Whether the VIP status has been granted
//   - blacklisted: Whether the customer is blocked from ordering
//   - version: Aggregate version for optimistic concurrency control
//
// Returns:
//   - *Customer: Restored customer aggregate
//   - error: Validation error if any parameter is invalid
func RestoreCustomer(
	id kernel.UUID,
	name string,
	balance kernel.Money,
	totalSpent kernel.Money,
	orderCount int,
	warningCount int,
	vip bool,
	blacklisted bool,
	version int,
) (*Customer, error) {
	customer := &Customer{
		vip:         vip,
		blacklisted: blacklisted,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setOrderCount(orderCount),
		customer.setWarningCount(warningCount),
		customer.setVersion(version),
	); err != nil {
		return nil, err
	}

	customer.balance = balance
	customer.totalSpent = totalSpent

	return customer, nil
}

// Validate checks if the Customer was properly constructed using a constructor.
// The zero value of Customer is invalid and will fail this validation.
//
// Returns:
//   - error: ErrCustomerIsNotConstructed if improperly initialized, nil if valid
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers for equality based on their unique identifiers.
//
// Parameters:
//   - other: The customer to compare with (can be nil)
//
// Returns:
//   - bool: true if customers have the same ID, false otherwise
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the customer.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the customer.
func (c *Customer) Name() string {
	return c.name
}

// Balance returns the current prepaid account balance.
func (c *Customer) Balance() kernel.Money {
	return c.balance
}

// TotalSpent returns the cumulative amount of all successful order charges.
func (c *Customer) TotalSpent() kernel.Money {
	return c.totalSpent
}

// OrderCount returns the number of successfully placed orders.
func (c *Customer) OrderCount() int {
	return c.orderCount
}

// WarningCount returns the number of warnings issued for failed order attempts.
func (c *Customer) WarningCount() int {
	return c.warningCount
}

// IsVip reports whether the customer holds the VIP loyalty status.
// Callers pricing an order must read this before applying the charge,
// since the charge itself may lift the customer into VIP.
func (c *Customer) IsVip() bool {
	return c.vip
}

// IsBlacklisted reports whether the customer is blocked from placing orders.
func (c *Customer) IsBlacklisted() bool {
	return c.blacklisted
}

// Version returns the aggregate version used for optimistic concurrency control.
func (c *Customer) Version() int {
	return c.version
}

// Deposit credits the account balance with the given amount.
//
// Business rules:
//   - The amount must be strictly positive
//   - Deposits are allowed even for blacklisted customers; the blacklist
//     only blocks placing orders
//
// Parameters:
//   - amount: The amount to credit (must be positive)
//
// Returns:
//   - error: ErrInvalidAmount if the amount is not positive
//
// Example:
//
//	amount, _ := kernel.NewMoneyFromString("100.00")
//	if err := customer.Deposit(amount); err != nil {
//	    // Handle invalid amount
//	}
func (c *Customer) Deposit(amount kernel.Money) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	c.balance = c.balance.Add(amount)
	return nil
}

// EnsureCanOrder verifies that the customer is allowed to place an order.
//
// Returns:
//   - error: ErrCustomerBlacklisted if the customer is on the blacklist, nil otherwise
func (c *Customer) EnsureCanOrder() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.blacklisted {
		return ErrCustomerBlacklisted
	}
	return nil
}

// ChargeForOrder debits the account for a successfully priced order and updates
// the spending statistics in the same step.
//
// Business rules:
//   - The amount must be strictly positive
//   - The balance must fully cover the amount; partial debits never happen
//   - On success the balance shrinks, total spend and order count grow,
//     and the VIP status is re-evaluated
//   - VIP re-evaluation happens after the charge, so the order that crosses
//     a threshold is still priced at the customer's previous rate
//
// Parameters:
//   - amount: The final order amount to debit (must be positive)
//
// Returns:
//   - error: ErrInvalidAmount if the amount is not positive,
//     ErrInsufficientFunds if the balance cannot cover it
//
// Example:
//
//	wasVip := customer.IsVip() // read before charging to price the order
//	if err := customer.ChargeForOrder(finalAmount); err != nil {
//	    // Handle insufficient funds
//	}
func (c *Customer) ChargeForOrder(amount kernel.Money) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !c.balance.GreaterOrEqual(amount) {
		return ErrInsufficientFunds
	}

	remaining, err := c.balance.Sub(amount)
	if err != nil {
		return err
	}

	c.balance = remaining
	c.totalSpent = c.totalSpent.Add(amount)
	c.orderCount++
	c.refreshVipStatus()
	return nil
}

// AddWarning records a warning for a failed order attempt.
// Once the warning count reaches BlacklistWarningLimit the customer is
// blacklisted. The blacklist flag, like VIP, is never reset by this aggregate.
//
// Returns:
//   - error: construction validation error, nil otherwise
func (c *Customer) AddWarning() error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.warningCount++
	if c.warningCount >= BlacklistWarningLimit {
		c.blacklisted = true
	}
	return nil
}

// refreshVipStatus grants the VIP status when a loyalty threshold is reached.
// The status is monotonic, there is no path that takes it away.
func (c *Customer) refreshVipStatus() {
	if c.vip {
		return
	}
	if c.totalSpent.Amount().GreaterThanOrEqual(VipSpendThreshold) || c.orderCount >= VipOrderCountThreshold {
		c.vip = true
	}
}

// setID validates and sets the customer's unique identifier.
// This is a private method used only during construction.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the customer's name.
// This is a private method used only during construction.
func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setOrderCount validates and sets the order counter.
// This is a private method used only during restoration.
func (c *Customer) setOrderCount(orderCount int) error {
	if orderCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderCount is invalid", fmt.Errorf("%d is negative", orderCount))
	}
	c.orderCount = orderCount
	return nil
}

// setWarningCount validates and sets the warning counter.
// This is a private method used only during restoration.
func (c *Customer) setWarningCount(warningCount int) error {
	if warningCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"warningCount is invalid", fmt.Errorf("%d is negative", warningCount))
	}
	c.warningCount = warningCount
	return nil
}

// setVersion validates and sets the aggregate version.
// This is a private method used only during restoration.
func (c *Customer) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version")
	}
	c.version = version
	return nil
}
