// Package order provides domain entities and business logic for sales order
// management. It implements the Order aggregate root with line item
// management, discounting, and confirmation.
//
// The package includes:
//   - Order: The aggregate root that owns line items, the optional discount, and the lifecycle
//   - Item: A line item entity identified within the aggregate, with SKU, unit price, and quantity
//   - Status: A state machine that enforces the Draft -> Confirmed transition
//   - Domain events emitted on every successful mutation and drained via PullDomainEvents
//   - Ports consumed by the aggregate: DiscountPolicy, ConfirmationSpecification, ItemIDGenerator
//
// Key business rules:
//   - All unit prices share the order's currency, which is fixed at creation
//   - An order holds at most 10 distinct SKUs; re-adding a SKU merges quantities
//   - A discount, once applied, is never replaced or removed
//   - The payable total is clamped to zero when the discount exceeds the pre-discount total
//   - Confirmed orders reject every mutation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
