package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCodeIsRequired     = errors.New("code is required")
	ErrCustomerIsRequired = errors.New("customer is required")
)

// CreateOrderCommand represents a request to register a new purchase order
// through the order-intake façade. Line-item product ids are resolved against
// the remote catalog before anything is persisted; their prices determine the
// order's total value.
//
// Example:
//
//	items := []order.LineItem{{ProductID: "64b9f1f4f1d2b2a3c4e5f6a7", Quantity: 2}}
//	cmd, err := NewCreateOrderCommand("PED-2024-001", "ACME Ltd", order.Deferred, items)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	code         string
	customer     string
	warehouse    string
	notes        string
	orderType    order.Type
	deliveryDate *time.Time
	lineItems    []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Code and customer are required; line items are each validated.
func NewCreateOrderCommand(
	code, customer string,
	orderType order.Type,
	lineItems []order.LineItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setCustomer(customer),
		orderType.Validate(),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.orderType = orderType

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// WithWarehouse sets the optional fulfilling warehouse.
func (c CreateOrderCommand) WithWarehouse(warehouse string) CreateOrderCommand {
	c.warehouse = warehouse
	return c
}

// WithNotes sets the optional free-form remarks.
func (c CreateOrderCommand) WithNotes(notes string) CreateOrderCommand {
	c.notes = notes
	return c
}

// WithDeliveryDate sets the optional agreed delivery timestamp.
func (c CreateOrderCommand) WithDeliveryDate(deliveryDate time.Time) CreateOrderCommand {
	c.deliveryDate = &deliveryDate
	return c
}

// Code returns the unique business code for the new order.
func (c CreateOrderCommand) Code() string {
	return c.code
}

// Customer returns the buyer name.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// Warehouse returns the optional fulfilling warehouse.
func (c CreateOrderCommand) Warehouse() string {
	return c.warehouse
}

// Notes returns the optional free-form remarks.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// OrderType returns the fulfilment scheduling type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// DeliveryDate returns the optional agreed delivery timestamp.
func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// LineItems returns the catalog product references.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	items := make([]order.LineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

func (c *CreateOrderCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	c.code = code
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.lineItems = make([]order.LineItem, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}
