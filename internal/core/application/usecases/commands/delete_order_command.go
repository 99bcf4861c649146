package commands

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to remove an order from the
// order-intake façade, keyed by its unique business code.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the order with the given code.
func NewDeleteOrderCommand(code string) (DeleteOrderCommand, error) {
	if code == "" {
		return DeleteOrderCommand{}, ErrCodeIsRequired
	}
	return DeleteOrderCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Code returns the business code identifying the order to delete.
func (c DeleteOrderCommand) Code() string {
	return c.code
}
