package courier

import (
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/errs"
	"cctexpress/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity, the base position
// used for route planning, and the activity flag that gates bidding.
//
// Key responsibilities:
//   - Managing courier identity (ID, name)
//   - Keeping the courier's base position for dispatch and routing
//   - Tracking whether the courier is active and allowed to bid
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name and valid base position
//   - Fresh couriers start active
//   - Deactivation excludes the courier from bidding but preserves history;
//     the flag can be toggled back at any time
//
// Example usage:
//
//	position, _ := kernel.NewGeoPoint(55.7558, 37.6173)
//	courier, err := NewCourier(kernel.NewUUID(), "Dmitry", position)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Courier is ready to submit bids
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// location is the courier's base position
	location kernel.GeoPoint
	// active marks whether the courier may submit bids
	active bool
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new active Courier with the specified parameters.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - location: Base position used for route planning (must be valid)
//
// Returns:
//   - *Courier: A fully initialized active courier
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
//
// Example:
//
//	position, _ := kernel.NewGeoPoint(55.7558, 37.6173)
//	courier, err := NewCourier(kernel.NewUUID(), "Dmitry", position)
//	if err != nil {
//	    log.Fatal("Failed to create courier:", err)
//	}
func NewCourier(id kernel.UUID, name string, location kernel.GeoPoint) (*Courier, error) {
	return RestoreCourier(id, name, location, true)
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its activity flag.
//
// Parameters:
//   - id: Unique identifier for the courier
//   - name: Human-readable courier name
//   - location: Base position used for route planning
//   - active: Whether the courier may currently submit bids
//
// Returns:
//   - *Courier: Restored courier aggregate
//   - error: Validation error if any parameter is invalid
func RestoreCourier(id kernel.UUID, name string, location kernel.GeoPoint, active bool) (*Courier, error) {
	courier := &Courier{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setLocation(location),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Validate checks if the Courier was properly constructed using a constructor.
// The zero value of Courier is invalid and will fail this validation.
//
// Returns:
//   - error: ErrCourierIsNotConstructed if improperly initialized, nil if valid
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers for equality based on their unique identifiers.
//
// Parameters:
//   - other: The courier to compare with (can be nil)
//
// Returns:
//   - bool: true if couriers have the same ID, false otherwise
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Location returns the courier's base position.
func (c *Courier) Location() kernel.GeoPoint {
	return c.location
}

// IsActive reports whether the courier may submit bids.
func (c *Courier) IsActive() bool {
	return c.active
}

// Activate allows the courier to submit bids again.
//
// Returns:
//   - error: construction validation error, nil otherwise
func (c *Courier) Activate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.active = true
	return nil
}

// Deactivate excludes the courier from bidding.
// Existing bids and assignments are unaffected; the courier simply cannot
// submit new bids until reactivated.
//
// Returns:
//   - error: construction validation error, nil otherwise
func (c *Courier) Deactivate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.active = false
	return nil
}

// setID validates and sets the courier's unique identifier.
// This is a private method used only during construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the courier's name.
// This is a private method used only during construction.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setLocation validates and sets the courier's base position.
// This is a private method used only during construction.
func (c *Courier) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
