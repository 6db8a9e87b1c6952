// Package kernel provides core domain primitives for the ordering system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Money: An immutable exact-integer currency amount with a currency tag
//   - Discount: An immutable code+percent pair with validation
//   - OrderID / OrderItemID: Non-empty string identifiers with value equality
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
