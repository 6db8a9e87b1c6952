// Package services provides domain services that implement business rules
// which don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DiscountPolicyService: Resolves discount codes against the local catalog
//   - DefaultConfirmationSpecification: Decides whether an order may be confirmed
//
// Both services are consumed by the Order aggregate through ports it defines,
// keeping the aggregate free of catalog and rule-set details following
// Domain-Driven Design principles.
package services
