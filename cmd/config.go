package cmd

// Config holds the application settings read from the environment.
// DiscountPolicy selects how discount codes are resolved: "local" uses the
// built-in catalog, "pricing" goes through the pricing context's promotions.
type Config struct {
	HTTPPort       string
	DiscountPolicy string
}
