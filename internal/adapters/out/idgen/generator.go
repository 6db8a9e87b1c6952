// Package idgen provides random identifier generation for orders and line
// items. Identifiers are UUIDs with a short type prefix so they stay
// recognizable in logs and API responses.
package idgen

import (
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RandomIDGenerator produces "ord_" and "item_" prefixed UUID identifiers.
// It implements ports.OrderIDGenerator and order.ItemIDGenerator.
type RandomIDGenerator struct{}

// NewRandomIDGenerator creates a RandomIDGenerator.
func NewRandomIDGenerator() RandomIDGenerator {
	return RandomIDGenerator{}
}

// NextOrderID returns a fresh order identifier.
func (RandomIDGenerator) NextOrderID() kernel.OrderID {
	id, err := kernel.NewOrderID("ord_" + uuid.NewString())
	if err != nil {
		// A prefixed UUID is never empty.
		panic(err)
	}
	return id
}

// NextOrderItemID returns a fresh line item identifier.
func (RandomIDGenerator) NextOrderItemID() kernel.OrderItemID {
	id, err := kernel.NewOrderItemID("item_" + uuid.NewString())
	if err != nil {
		panic(err)
	}
	return id
}
