package kernel

import (
	"fmt"
	"math"
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrDiscountIsNotConstructed indicates that a Discount was not properly initialized
// through NewDiscount. This error is returned when validating a zero-value Discount.
var ErrDiscountIsNotConstructed = errs.NewValueIsRequiredError("Discount must be created via NewDiscount")

// Discount is a value object pairing a normalized discount code with a percent
// in the half-open range (0, 100]. It is immutable after construction; an
// order holds at most one Discount and can never replace it.
type Discount struct {
	code    string
	percent float64
}

// NewDiscount creates a Discount from a code and a percent. The code is
// trimmed and uppercased and must be non-empty; the percent must be finite
// and satisfy 0 < percent <= 100.
func NewDiscount(code string, percent float64) (Discount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Discount{}, errs.NewValueIsRequiredError("discount code")
	}
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return Discount{}, errs.NewValueIsInvalidErrorWithCause("percent",
			fmt.Errorf("discount percent must be finite, got %v", percent))
	}
	if percent <= 0 || percent > 100 {
		return Discount{}, errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}

	return Discount{code: normalized, percent: percent}, nil
}

// Code returns the normalized uppercase discount code.
func (d Discount) Code() string {
	return d.code
}

// Percent returns the discount percent in (0, 100].
func (d Discount) Percent() float64 {
	return d.percent
}

// Validate checks that the Discount was constructed through NewDiscount.
func (d Discount) Validate() error {
	if d.code == "" {
		return ErrDiscountIsNotConstructed
	}
	return nil
}
