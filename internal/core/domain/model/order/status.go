package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single, irreversible transition:
//
//	Draft ──> Confirmed
//
// Confirmed is absorbing: no operation may move an order out of it, and every
// mutating operation on a confirmed order is rejected.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Orders in this status accept item, quantity, and discount mutations.
	Draft

	// Confirmed indicates the order has been confirmed.
	// This is a final state with no further transitions allowed.
	Confirmed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "DRAFT",
		Confirmed: "CONFIRMED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "DRAFT",
		Confirmed: "CONFIRMED",
	}
}

// StatusFromString parses a persisted status string into a Status.
// Only the exact persisted representations "DRAFT" and "CONFIRMED" are
// accepted; anything else fails, so corrupted records never rehydrate.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewDomainRuleError(fmt.Sprintf("Unknown order status: %s", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Draft, Confirmed. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status: "DRAFT" or "CONFIRMED".
// Invalid values render as "Unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDraft reports whether the order is still editable.
func (s Status) IsDraft() bool {
	return s == Draft
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed
//
// Returns (0, error) if the order is already confirmed or the status is invalid.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, ErrOrderNotEditable
	}
	return Confirmed, nil
}
