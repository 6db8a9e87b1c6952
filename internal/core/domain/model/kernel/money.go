package kernel

import (
	"fmt"
	"math"
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not properly initialized
// through NewMoney or ZeroMoney. This error is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or ZeroMoney")

// Money is a value object representing an exact currency amount in minor units
// (cents). It carries a currency tag and forbids arithmetic between amounts of
// different currencies.
//
// Money is immutable: every operation returns a new instance and never mutates
// the receiver. Amounts are always non-negative; any operation that would
// produce a negative amount fails instead.
//
// The zero value of Money is invalid and must be constructed using NewMoney or
// ZeroMoney.
//
// Example usage:
//
//	price, err := kernel.NewMoney(2599, "USD")
//	if err != nil {
//	    // handle validation error
//	}
//	doubled, err := price.Multiply(2)
type Money struct {
	cents    int64
	currency string
}

// NewMoney creates a Money amount of the given minor units and currency.
// The currency is trimmed and must be non-empty; cents must be non-negative.
func NewMoney(cents int64, currency string) (Money, error) {
	normalized := strings.TrimSpace(currency)
	if normalized == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("cents",
			fmt.Errorf("money cannot be negative: %d", cents))
	}

	return Money{cents: cents, currency: normalized}, nil
}

// ZeroMoney creates a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(0, currency)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the currency tag.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of the receiver and other.
// Fails if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.cents+other.cents, m.currency)
}

// Subtract returns the difference between the receiver and other.
// Fails if the currencies differ or the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	if m.cents < other.cents {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("cents",
			fmt.Errorf("money cannot be negative: %d - %d", m.cents, other.cents))
	}
	return NewMoney(m.cents-other.cents, m.currency)
}

// Multiply returns the receiver scaled by factor. The factor must be finite
// and non-negative. The result is rounded half away from zero; amounts are
// never negative, so this equals conventional round-half-up. This rounding
// mode is relied upon by discount computation and must not change.
func (m Money) Multiply(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("multiplier must be finite, got %v", factor))
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("multiplier cannot be negative, got %v", factor))
	}

	product := math.Round(float64(m.cents) * factor)
	// math.MaxInt64 rounds up to 2^63 as a float64, so an equal product already
	// overflows int64 and must be rejected too.
	if product >= math.MaxInt64 {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", product, 0, int64(math.MaxInt64))
	}

	return NewMoney(int64(product), m.currency)
}

// CompareTo returns -1, 0, or 1 when the receiver is less than, equal to, or
// greater than other. Fails if the currencies differ.
func (m Money) CompareTo(other Money) (int, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return 0, err
	}

	switch {
	case m.cents < other.cents:
		return -1, nil
	case m.cents > other.cents:
		return 1, nil
	default:
		return 0, nil
	}
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Validate checks that the Money value was constructed through NewMoney or
// ZeroMoney. A zero-value Money has an empty currency and is invalid.
func (m Money) Validate() error {
	if m.currency == "" {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

func (m Money) assertSameCurrency(other Money) error {
	if m.currency != other.currency {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency))
	}
	return nil
}
