// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: construction-time validation, one
// aggregate mutation, persistence, and draining of the emitted domain events.
package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCurrencyIsRequired = errors.New("currency is required")
)

// CreateOrderCommand represents a request to open a new draft order in the
// given currency.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("USD")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created as draft", result.OrderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	currency string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new draft order.
// Validates that the currency is not empty after trimming.
func NewCreateOrderCommand(currency string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCurrency(currency); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Currency returns the currency the order will be denominated in.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	trimmed := strings.TrimSpace(currency)
	if trimmed == "" {
		return ErrCurrencyIsRequired
	}

	c.currency = trimmed
	return nil
}
