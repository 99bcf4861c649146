package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByCodeQueryHandler retrieves a single order read model from the
// database, including the JSONB history log and line items.
type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByCodeQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle executes the query for one order by business code.
// Returns ObjectNotFoundError when no order matches.
func (h GetOrderByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByCodeQuery,
) (GetOrderByCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByCodeQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			customer,
			warehouse,
			notes,
			order_type,
			state,
			history,
			line_items,
			version,
			total_value,
			delivery_date,
			integrity_seal,
			updated_at
		FROM orders
		WHERE code = ?
	`, query.Code()).Row()

	var orderResp GetOrderByCodeQueryResponse
	var id uuid.UUID
	var history, lineItems []byte
	var totalValue string
	var deliveryDate sql.NullTime
	var seal string

	err := row.Scan(
		&id,
		&orderResp.Code,
		&orderResp.Customer,
		&orderResp.Warehouse,
		&orderResp.Notes,
		&orderResp.OrderType,
		&orderResp.State,
		&history,
		&lineItems,
		&orderResp.Version,
		&totalValue,
		&deliveryDate,
		&seal,
		&orderResp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByCodeQueryResponse{}, errs.NewObjectNotFoundError("code", query.Code())
	}
	if err != nil {
		return GetOrderByCodeQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrderByCodeQueryResponse{}, idErr
	}
	orderResp.ID = orderID

	value, valueErr := parseMoney(totalValue)
	if valueErr != nil {
		return GetOrderByCodeQueryResponse{}, valueErr
	}
	orderResp.TotalValue = value

	if deliveryDate.Valid {
		date := deliveryDate.Time
		orderResp.DeliveryDate = &date
	}
	orderResp.Sealed = seal != ""

	orderResp.History = make([]order.StateChange, 0)
	if len(history) > 0 {
		if err = json.Unmarshal(history, &orderResp.History); err != nil {
			return GetOrderByCodeQueryResponse{}, err
		}
	}

	orderResp.LineItems = make([]order.LineItem, 0)
	if len(lineItems) > 0 {
		if err = json.Unmarshal(lineItems, &orderResp.LineItems); err != nil {
			return GetOrderByCodeQueryResponse{}, err
		}
	}

	return orderResp, nil
}
