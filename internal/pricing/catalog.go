package pricing

import "strings"

// InMemoryPromotionCatalog is the pricing context's built-in promotion store.
// It implements PromotionLookup over a fixed set of promotions.
type InMemoryPromotionCatalog struct {
	rates map[string]float64
}

// NewInMemoryPromotionCatalog creates a catalog with the built-in promotions.
func NewInMemoryPromotionCatalog() *InMemoryPromotionCatalog {
	return &InMemoryPromotionCatalog{
		rates: map[string]float64{
			"SAVE10": 0.1,
			"VIP20":  0.2,
		},
	}
}

// FindPromotionByCoupon returns the promotion for the coupon code, matching
// case-insensitively after trimming. Empty and unknown coupons report ok=false.
func (c *InMemoryPromotionCatalog) FindPromotionByCoupon(code string) (Promotion, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Promotion{}, false
	}

	rate, ok := c.rates[normalized]
	if !ok {
		return Promotion{}, false
	}

	return Promotion{CouponCode: normalized, DiscountRate: rate}, true
}
