// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves summaries of all orders in the system, optionally
// narrowed to a single lifecycle state.
//
// Example:
//
//	query := NewListOrdersQuery().WithState("DISPATCHED")
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type ListOrdersQuery struct {
	state *string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// WithState narrows the listing to orders in the given lifecycle state.
func (q ListOrdersQuery) WithState(state string) ListOrdersQuery {
	q.state = &state
	return q
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// State returns the lifecycle state filter, or nil when unfiltered.
func (q ListOrdersQuery) State() *string {
	return q.state
}

// ListOrdersQueryResponse represents an order summary in the read model.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	Code         string
	Customer     string
	Warehouse    string
	OrderType    string
	State        string
	Version      int
	TotalValue   decimal.Decimal
	DeliveryDate *time.Time
	UpdatedAt    time.Time
}
