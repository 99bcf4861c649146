package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to update an existing order through
// the order-intake façade, keyed by its unique business code. Only the fields
// explicitly set via the With* builders are changed; a target state, when
// given, is applied through the sanctioned transition path so the history log
// and version counter stay consistent.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	code string

	customer     *string
	warehouse    *string
	notes        *string
	deliveryDate *time.Time
	clearDate    bool
	targetState  *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update the order with the given code.
func NewUpdateOrderCommand(code string) (UpdateOrderCommand, error) {
	if code == "" {
		return UpdateOrderCommand{}, ErrCodeIsRequired
	}
	return UpdateOrderCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// WithCustomer replaces the buyer name.
func (c UpdateOrderCommand) WithCustomer(customer string) UpdateOrderCommand {
	c.customer = &customer
	return c
}

// WithWarehouse replaces the fulfilling warehouse.
func (c UpdateOrderCommand) WithWarehouse(warehouse string) UpdateOrderCommand {
	c.warehouse = &warehouse
	return c
}

// WithNotes replaces the free-form remarks.
func (c UpdateOrderCommand) WithNotes(notes string) UpdateOrderCommand {
	c.notes = &notes
	return c
}

// WithDeliveryDate replaces the agreed delivery timestamp.
func (c UpdateOrderCommand) WithDeliveryDate(deliveryDate time.Time) UpdateOrderCommand {
	c.deliveryDate = &deliveryDate
	return c
}

// WithClearedDeliveryDate removes the agreed delivery timestamp.
func (c UpdateOrderCommand) WithClearedDeliveryDate() UpdateOrderCommand {
	c.clearDate = true
	return c
}

// WithTargetState directs a state transition as part of the update.
func (c UpdateOrderCommand) WithTargetState(state order.Status) UpdateOrderCommand {
	c.targetState = &state
	return c
}

// Code returns the business code identifying the order to update.
func (c UpdateOrderCommand) Code() string {
	return c.code
}

// Customer returns the replacement buyer name, or nil.
func (c UpdateOrderCommand) Customer() *string {
	return c.customer
}

// Warehouse returns the replacement warehouse, or nil.
func (c UpdateOrderCommand) Warehouse() *string {
	return c.warehouse
}

// Notes returns the replacement remarks, or nil.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

// DeliveryDate returns the replacement delivery timestamp, or nil.
func (c UpdateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// ClearDeliveryDate reports whether the delivery timestamp should be removed.
func (c UpdateOrderCommand) ClearDeliveryDate() bool {
	return c.clearDate
}

// TargetState returns the directed transition target, or nil.
func (c UpdateOrderCommand) TargetState() *order.Status {
	return c.targetState
}

// HasChanges reports whether any field was set.
func (c UpdateOrderCommand) HasChanges() bool {
	return c.customer != nil || c.warehouse != nil || c.notes != nil ||
		c.deliveryDate != nil || c.clearDate || c.targetState != nil
}
