package services

import (
	"strings"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

var (
	// ErrDiscountCodeIsRequired is returned when an empty code is resolved.
	ErrDiscountCodeIsRequired = errs.NewDomainRuleError("Discount code cannot be empty")

	// ErrUnknownDiscountCode is returned when the code is not in the catalog.
	ErrUnknownDiscountCode = errs.NewDomainRuleError("Unknown discount code")
)

// DiscountPolicyService is a domain service that resolves discount codes
// against a fixed local catalog. It implements order.DiscountPolicy.
//
// Business rules:
//   - Codes are matched case-insensitively after trimming whitespace
//   - Empty codes are rejected before any lookup
//   - Unknown codes are rejected; the aggregate never sees a partial result
//
// Example usage:
//
//	policy := services.NewDiscountPolicyService()
//	resolved, err := policy.Resolve("save10")
//	if errors.Is(err, services.ErrUnknownDiscountCode) {
//	    // No such discount
//	    return
//	}
//	// resolved.Code == "SAVE10", resolved.Percent == 10
type DiscountPolicyService struct {
	percents map[string]float64
}

// NewDiscountPolicyService creates a DiscountPolicyService with the built-in catalog.
func NewDiscountPolicyService() DiscountPolicyService {
	return DiscountPolicyService{
		percents: map[string]float64{
			"SAVE10": 10,
			"VIP20":  20,
		},
	}
}

// Resolve looks up the code in the catalog and returns the canonical code with
// its percentage. The returned code is the normalized (trimmed, upper-cased) form.
func (s DiscountPolicyService) Resolve(code string) (order.ResolvedDiscount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return order.ResolvedDiscount{}, ErrDiscountCodeIsRequired
	}

	percent, ok := s.percents[normalized]
	if !ok {
		return order.ResolvedDiscount{}, ErrUnknownDiscountCode
	}

	return order.ResolvedDiscount{Code: normalized, Percent: percent}, nil
}
