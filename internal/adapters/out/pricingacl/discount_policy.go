// Package pricingacl adapts the pricing context's promotion vocabulary to the
// ordering context's discount policy port. It is an anti-corruption layer: the
// translation between fractional rates and whole percentages, and between
// comma-ok lookups and domain errors, happens here and nowhere else.
package pricingacl

import (
	"math"
	"strings"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pricing"
)

var (
	// ErrDiscountCodeIsRequired is returned when an empty code is resolved.
	ErrDiscountCodeIsRequired = errs.NewDomainRuleError("Discount code cannot be empty")

	// ErrUnknownDiscountCode is returned when the pricing context has no
	// promotion for the coupon.
	ErrUnknownDiscountCode = errs.NewDomainRuleError("Unknown discount code")
)

// PricingDiscountPolicy implements order.DiscountPolicy over a pricing
// PromotionLookup. A promotion's fractional rate (0.1) becomes a whole
// percentage (10), rounded half away from zero.
type PricingDiscountPolicy struct {
	lookup pricing.PromotionLookup
}

// NewPricingDiscountPolicy creates a PricingDiscountPolicy over the given lookup.
func NewPricingDiscountPolicy(lookup pricing.PromotionLookup) PricingDiscountPolicy {
	return PricingDiscountPolicy{lookup: lookup}
}

// Resolve translates the coupon into the ordering context's discount terms.
func (p PricingDiscountPolicy) Resolve(code string) (order.ResolvedDiscount, error) {
	if strings.TrimSpace(code) == "" {
		return order.ResolvedDiscount{}, ErrDiscountCodeIsRequired
	}

	promotion, ok := p.lookup.FindPromotionByCoupon(code)
	if !ok {
		return order.ResolvedDiscount{}, ErrUnknownDiscountCode
	}

	return order.ResolvedDiscount{
		Code:    promotion.CouponCode,
		Percent: math.Round(promotion.DiscountRate * 100),
	}, nil
}
