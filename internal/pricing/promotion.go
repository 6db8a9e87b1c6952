package pricing

// Promotion is a promotion as the pricing context models it. DiscountRate is a
// fraction in (0, 1], not a percentage; the ordering context must translate it
// before use.
type Promotion struct {
	CouponCode   string
	DiscountRate float64
}

// PromotionLookup finds promotions by coupon code. The boolean result follows
// the comma-ok convention: a missing coupon is a normal outcome here, not an
// error.
type PromotionLookup interface {
	FindPromotionByCoupon(code string) (Promotion, bool)
}
