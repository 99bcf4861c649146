// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The business code carries a unique constraint so the intake façade can key
// operations by code; the history log and line items are stored as JSONB.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code              string          `gorm:"uniqueIndex;not null"`
	Customer          string          `gorm:"not null"`
	Warehouse         string          ``
	Notes             string          ``
	OrderType         string          `gorm:"not null"`
	State             string          `gorm:"index;not null"`
	History           []byte          `gorm:"type:jsonb"`
	LineItems         []byte          `gorm:"type:jsonb"`
	Version           int             `gorm:"not null"`
	TotalValue        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DeliveryDate      *time.Time      ``
	IntegritySeal     string          ``
	IntegritySnapshot string          ``
	UpdatedAt         time.Time       ``
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// The history log and line items are serialized to JSON for the JSONB columns.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	history, err := json.Marshal(aggregate.History())
	if err != nil {
		return OrderDTO{}, err
	}

	lineItems, err := json.Marshal(aggregate.LineItems())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Code:              aggregate.Code(),
		Customer:          aggregate.Customer(),
		Warehouse:         aggregate.Warehouse(),
		Notes:             aggregate.Notes(),
		OrderType:         aggregate.OrderType().String(),
		State:             aggregate.State().String(),
		History:           history,
		LineItems:         lineItems,
		Version:           aggregate.Version(),
		TotalValue:        aggregate.TotalValue(),
		DeliveryDate:      aggregate.DeliveryDate(),
		IntegritySeal:     aggregate.IntegritySeal(),
		IntegritySnapshot: aggregate.IntegritySnapshot(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the history log using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	state, err := order.StatusFromString(dto.State)
	if err != nil {
		return nil, err
	}

	history := make([]order.StateChange, 0)
	if len(dto.History) > 0 {
		if err = json.Unmarshal(dto.History, &history); err != nil {
			return nil, err
		}
	}

	lineItems := make([]order.LineItem, 0)
	if len(dto.LineItems) > 0 {
		if err = json.Unmarshal(dto.LineItems, &lineItems); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		dto.Code, dto.Customer, dto.Warehouse, dto.Notes,
		orderType,
		state,
		history,
		dto.Version,
		dto.TotalValue,
		dto.DeliveryDate,
		lineItems,
		dto.IntegritySeal, dto.IntegritySnapshot,
		dto.UpdatedAt,
	)
}
