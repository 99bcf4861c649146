package product

import (
	"errors"
	"fmt"

	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is returned when a decrement would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is the local stock-keeping aggregate referenced by order line items.
// It mirrors the catalog's identity but owns the stock counter, which is
// mutated only inside a dispatch transaction's lock scope.
type Product struct {
	// id is the catalog identifier, treated as opaque
	id string

	// name is the product display name
	name string

	// price is the unit price at the time the product was registered locally
	price decimal.Decimal

	// stock is the number of units on hand; never negative
	stock int

	// isConstructed ensures the product was created via a factory method
	isConstructed bool
}

// NewProduct creates a validated Product with the given initial stock.
func NewProduct(id, name string, price decimal.Decimal, stock int) (*Product, error) {
	p := &Product{
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id, name string, price decimal.Decimal, stock int) (*Product, error) {
	return NewProduct(id, name, price, stock)
}

// Validate ensures the Product instance was properly constructed through a factory.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier.
func (p *Product) ID() string {
	return p.id
}

// Name returns the product display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the number of units on hand.
func (p *Product) Stock() int {
	return p.stock
}

// HasStock reports whether quantity units can be decremented.
func (p *Product) HasStock(quantity int) bool {
	return quantity >= 0 && p.stock >= quantity
}

// DecrementStock removes quantity units from stock.
// Returns ErrInsufficientStock when fewer than quantity units are on hand;
// stock is left unchanged in that case.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if p.stock < quantity {
		return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, p.stock, quantity)
	}
	p.stock -= quantity
	return nil
}

func (p *Product) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}
