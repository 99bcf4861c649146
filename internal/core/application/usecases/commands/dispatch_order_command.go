package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrDispatchOrderCommandIsNotConstructed = errors.New(
		"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
	)
	ErrCallerRoleIsRequired = errors.New("caller role is required")
)

// DispatchOrderCommand represents a request to dispatch a single order:
// transition it to Dispatched, decrement the stock of its line items and
// re-seal its critical fields, all in one atomic transaction.
//
// The client-known version is optional defense-in-depth for callers that
// read-then-act across separate requests; when supplied it is compared against
// the stored version after the row lock is acquired.
//
// Example:
//
//	v := 3
//	cmd, err := NewDispatchOrderCommand(orderID, RoleWarehouseWorker, &v)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	callerRole    Role
	clientVersion *int

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch an order.
// clientVersion may be nil when the caller does not track versions.
func NewDispatchOrderCommand(orderID kernel.UUID, callerRole Role, clientVersion *int) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerRole(callerRole),
		cmd.setClientVersion(clientVersion),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to dispatch.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerRole returns the caller's resolved role.
func (c DispatchOrderCommand) CallerRole() Role {
	return c.callerRole
}

// ClientVersion returns the caller-known order version, or nil.
func (c DispatchOrderCommand) ClientVersion() *int {
	return c.clientVersion
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setCallerRole(callerRole Role) error {
	if callerRole == "" {
		return ErrCallerRoleIsRequired
	}
	c.callerRole = callerRole
	return nil
}

func (c *DispatchOrderCommand) setClientVersion(clientVersion *int) error {
	if clientVersion != nil {
		v := *clientVersion
		c.clientVersion = &v
	}
	return nil
}
