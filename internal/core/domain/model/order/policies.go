package order

import "ordering/internal/core/domain/model/kernel"

// ResolvedDiscount is the result of resolving a discount code: the normalized
// code and an integer-like percent in (0, 100]. It is the ordering context's
// own vocabulary; adapters translating from other bounded contexts must map
// their shapes into it and never leak theirs into the aggregate.
type ResolvedDiscount struct {
	Code    string
	Percent float64
}

// DiscountPolicy resolves a discount code to a code+percent pair. The
// aggregate depends only on this capability; implementations range from a
// local in-memory catalog to an anti-corruption-layer adapter over a separate
// pricing context. Resolution fails for unknown or empty codes.
type DiscountPolicy interface {
	Resolve(code string) (ResolvedDiscount, error)
}

// ConfirmationSpecification decides whether an order may transition to
// Confirmed. It is a replaceable policy: alternate confirmation rules can be
// substituted without touching the aggregate.
type ConfirmationSpecification interface {
	// AssertSatisfiedBy returns nil when the order is confirmable and a
	// domain rule error describing the violated rule otherwise.
	AssertSatisfiedBy(o *Order) error
}

// ItemIDGenerator mints identifiers for new line items. The aggregate invokes
// it only when a genuinely new line is created (adding an existing SKU merges
// quantities instead).
type ItemIDGenerator interface {
	NextOrderItemID() kernel.OrderItemID
}
