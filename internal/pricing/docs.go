// Package pricing models a separate bounded context that owns promotions.
// Its vocabulary differs from the ordering context on purpose: promotions
// carry a fractional discount rate (0.1 means 10%), not a percentage, and a
// missing coupon is reported via comma-ok rather than an error. The ordering
// side talks to this package only through the anti-corruption layer in
// internal/adapters/out/pricingacl.
package pricing
