package queries

import (
	"context"
	"database/sql"

	"pedidos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// parseMoney converts the numeric column text into an exact decimal.
func parseMoney(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

// ListOrdersQueryHandler retrieves order summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve order summaries.
// Results are sorted by business code for consistent output.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	sqlText := `
		SELECT
			id,
			code,
			customer,
			warehouse,
			order_type,
			state,
			version,
			total_value,
			delivery_date,
			updated_at
		FROM orders
		ORDER BY code
	`
	args := make([]any, 0, 1)
	if state := query.State(); state != nil {
		sqlText = `
		SELECT
			id,
			code,
			customer,
			warehouse,
			order_type,
			state,
			version,
			total_value,
			delivery_date,
			updated_at
		FROM orders
		WHERE state = ?
		ORDER BY code
	`
		args = append(args, *state)
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp ListOrdersQueryResponse
		var id uuid.UUID
		var totalValue string
		var deliveryDate sql.NullTime

		err = rows.Scan(
			&id,
			&orderResp.Code,
			&orderResp.Customer,
			&orderResp.Warehouse,
			&orderResp.OrderType,
			&orderResp.State,
			&orderResp.Version,
			&totalValue,
			&deliveryDate,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		value, valueErr := parseMoney(totalValue)
		if valueErr != nil {
			return nil, valueErr
		}
		orderResp.TotalValue = value

		if deliveryDate.Valid {
			date := deliveryDate.Time
			orderResp.DeliveryDate = &date
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
