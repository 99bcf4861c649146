package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrDispatchBatchCommandIsNotConstructed = errors.New(
		"DispatchBatchCommand must be created via NewDispatchBatchCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// DispatchBatchCommand represents a request to dispatch several orders in one
// pass. Individual item failures are counted, not raised: the batch never
// aborts the items that succeeded because another item failed.
type DispatchBatchCommand struct { //nolint:recvcheck //using for validation
	orderIDs   []kernel.UUID
	callerRole Role

	guard guard.ConstructorGuard
}

// NewDispatchBatchCommand creates a command to dispatch a list of orders.
func NewDispatchBatchCommand(orderIDs []kernel.UUID, callerRole Role) (DispatchBatchCommand, error) {
	cmd := DispatchBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setCallerRole(callerRole),
	); err != nil {
		return DispatchBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchBatchCommand) Validate() error {
	return c.guard.Validate(ErrDispatchBatchCommandIsNotConstructed)
}

// OrderIDs returns the internal identifiers of the orders to dispatch.
func (c DispatchBatchCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// CallerRole returns the caller's resolved role.
func (c DispatchBatchCommand) CallerRole() Role {
	return c.callerRole
}

func (c *DispatchBatchCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(c.orderIDs, orderIDs)
	return nil
}

func (c *DispatchBatchCommand) setCallerRole(callerRole Role) error {
	if callerRole == "" {
		return ErrCallerRoleIsRequired
	}
	c.callerRole = callerRole
	return nil
}
