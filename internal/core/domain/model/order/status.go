package order

import (
	"errors"
	"fmt"

	"cctexpress/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an order status change violates the
// lifecycle state machine. Concrete transition errors wrap this sentinel so
// callers can detect the condition with errors.Is.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Confirmed ──> BiddingOpen ──> Assigned ──> Completed
//	  │
//	  └─────> Rejected
//
// Rejected is reachable only from Draft, when payment fails at placement.
// Completed and Rejected are final states. There is no path back from
// Assigned to BiddingOpen, which is what makes a second bidding resolution
// impossible.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a freshly composed order.
	// Draft orders exist only inside the placement flow; by the time an
	// order is persisted it has moved on to Confirmed or Rejected.
	Draft

	// Confirmed indicates the order has been paid for.
	// Confirmed orders are waiting for bidding to open.
	Confirmed

	// BiddingOpen indicates couriers may submit delivery bids for the order.
	BiddingOpen

	// Assigned indicates a bid has been selected and a courier is
	// responsible for the delivery.
	Assigned

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Completed

	// Rejected indicates payment failed at placement.
	// This is a final state with no further transitions allowed.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Draft:       "draft",
		Confirmed:   "confirmed",
		BiddingOpen: "bidding_open",
		Assigned:    "assigned",
		Completed:   "completed",
		Rejected:    "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:       "draft",
		Confirmed:   "confirmed",
		BiddingOpen: "bidding_open",
		Assigned:    "assigned",
		Completed:   "completed",
		Rejected:    "rejected",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Confirmed, BiddingOpen, Assigned, Completed, Rejected.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the machine-readable name of the status, for example
// "bidding_open". These names appear in API responses and published events.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString converts a machine-readable status name back into a
// Status value. This is the inverse of String for valid statuses and is
// used when restoring orders from persistence.
//
// Returns:
//   - Status: the matching status value
//   - error: validation error if the name does not match any valid status
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// IsFinal reports whether the status permits no further transitions.
// Completed and Rejected orders never change again.
func (s Status) IsFinal() bool {
	return s == Completed || s == Rejected
}

// ValidateCanHaveCourier validates the consistency between order status and courier assignment.
// Enforces business rules about which statuses require courier assignment.
//
// Business Rules:
//   - Draft, Confirmed, BiddingOpen and Rejected orders must not have a courier
//   - Assigned and Completed orders must have a courier
//
// Parameters:
//   - courier: whether the order has a courier assigned
//
// Returns:
//   - error: validation error if status and courier assignment are inconsistent
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed (payment succeeded)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error wrapping ErrInvalidTransition) otherwise
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, newTransitionError(s, Confirmed)
	}
	return Confirmed, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Draft -> Rejected (payment failed)
//
// Rejection is only possible at placement time. Once an order has been
// confirmed its money has moved and the lifecycle continues forward.
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (0, error wrapping ErrInvalidTransition) otherwise
func (s Status) Reject() (Status, error) {
	if s != Draft {
		return 0, newTransitionError(s, Rejected)
	}
	return Rejected, nil
}

// OpenBidding transitions the status to BiddingOpen.
//
// Valid transitions:
//   - Confirmed -> BiddingOpen
//
// Returns:
//   - (BiddingOpen, nil) on valid transition
//   - (0, error wrapping ErrInvalidTransition) otherwise
func (s Status) OpenBidding() (Status, error) {
	if s != Confirmed {
		return 0, newTransitionError(s, BiddingOpen)
	}
	return BiddingOpen, nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - BiddingOpen -> Assigned (a bid was selected)
//
// Unlike ordinary dispatch systems there is no Assigned -> Assigned
// reassignment here: selecting a winning bid is allowed at most once
// per order, and this transition is what enforces it.
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error wrapping ErrInvalidTransition) otherwise
func (s Status) Assign() (Status, error) {
	if s != BiddingOpen {
		return 0, newTransitionError(s, Assigned)
	}
	return Assigned, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Assigned -> Completed (order delivered)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error wrapping ErrInvalidTransition) otherwise
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, newTransitionError(s, Completed)
	}
	return Completed, nil
}

func newTransitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from.String(), to.String())
}
