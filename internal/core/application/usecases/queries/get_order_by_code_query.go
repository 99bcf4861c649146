package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
		"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
	)
	ErrQueryCodeIsRequired = errors.New("code is required")
)

// GetOrderByCodeQuery retrieves the full read model of a single order,
// identified by its unique business code.
type GetOrderByCodeQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetOrderByCodeQuery creates a query for the order with the given code.
func NewGetOrderByCodeQuery(code string) (GetOrderByCodeQuery, error) {
	if code == "" {
		return GetOrderByCodeQuery{}, ErrQueryCodeIsRequired
	}
	return GetOrderByCodeQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByCodeQueryIsNotConstructed if validation fails.
func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

// Code returns the business code identifying the order.
func (q GetOrderByCodeQuery) Code() string {
	return q.code
}

// GetOrderByCodeQueryResponse represents the full order read model,
// including the state history log and line items.
type GetOrderByCodeQueryResponse struct {
	ID           kernel.UUID
	Code         string
	Customer     string
	Warehouse    string
	Notes        string
	OrderType    string
	State        string
	History      []order.StateChange
	LineItems    []order.LineItem
	Version      int
	TotalValue   decimal.Decimal
	DeliveryDate *time.Time
	Sealed       bool
	UpdatedAt    time.Time
}
