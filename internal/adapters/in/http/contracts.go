package http

import (
	"time"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/order"
)

// Error is the uniform error payload returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItem is the wire form of an order line item.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the payload for registering a new order.
type CreateOrderRequest struct {
	Code         string     `json:"code"`
	Customer     string     `json:"customer"`
	Warehouse    string     `json:"warehouse"`
	Notes        string     `json:"notes"`
	OrderType    string     `json:"orderType"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	LineItems    []LineItem `json:"lineItems"`
}

// UpdateOrderRequest is the payload for updating an order. Only the fields
// present in the JSON body are applied; an explicit null delivery date clears
// the stored value.
type UpdateOrderRequest struct {
	Customer     *string    `json:"customer"`
	Warehouse    *string    `json:"warehouse"`
	Notes        *string    `json:"notes"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	ClearDate    bool       `json:"clearDeliveryDate"`
	State        *string    `json:"state"`
}

// DispatchRequest optionally carries the client version in the body as an
// alternative to the X-Order-Version header.
type DispatchRequest struct {
	Version *int `json:"version"`
}

// DispatchResponse reports the outcome of a single dispatch.
type DispatchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	State   string `json:"state"`
	Version int    `json:"version"`
}

// BatchDispatchRequest identifies the orders to dispatch together.
type BatchDispatchRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// BatchDispatchResponse reports the per-order tally of a batch dispatch.
type BatchDispatchResponse struct {
	Success    bool `json:"success"`
	Dispatched int  `json:"dispatched"`
	Failed     int  `json:"failed"`
}

// StateChange is the wire form of one history log entry.
type StateChange struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	At   time.Time `json:"at"`
}

// OrderResponse is the full wire representation of an order.
type OrderResponse struct {
	ID           string        `json:"id"`
	Code         string        `json:"code"`
	Customer     string        `json:"customer"`
	Warehouse    string        `json:"warehouse,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	OrderType    string        `json:"orderType"`
	State        string        `json:"state"`
	History      []StateChange `json:"history"`
	LineItems    []LineItem    `json:"lineItems"`
	Version      int           `json:"version"`
	TotalValue   string        `json:"totalValue"`
	DeliveryDate *time.Time    `json:"deliveryDate,omitempty"`
	Sealed       bool          `json:"sealed"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// OrderSummaryResponse is the wire representation of an order listing entry.
type OrderSummaryResponse struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Customer     string     `json:"customer"`
	Warehouse    string     `json:"warehouse,omitempty"`
	OrderType    string     `json:"orderType"`
	State        string     `json:"state"`
	Version      int        `json:"version"`
	TotalValue   string     `json:"totalValue"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func orderToResponse(o *order.Order) OrderResponse {
	history := make([]StateChange, 0, len(o.History()))
	for _, change := range o.History() {
		history = append(history, StateChange{
			From: change.From.String(),
			To:   change.To.String(),
			At:   change.At,
		})
	}

	lineItems := make([]LineItem, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		lineItems = append(lineItems, LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		Code:         o.Code(),
		Customer:     o.Customer(),
		Warehouse:    o.Warehouse(),
		Notes:        o.Notes(),
		OrderType:    o.OrderType().String(),
		State:        o.State().String(),
		History:      history,
		LineItems:    lineItems,
		Version:      o.Version(),
		TotalValue:   o.TotalValue().String(),
		DeliveryDate: o.DeliveryDate(),
		Sealed:       o.Sealed(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func queryOrderToResponse(resp queries.GetOrderByCodeQueryResponse) OrderResponse {
	history := make([]StateChange, 0, len(resp.History))
	for _, change := range resp.History {
		history = append(history, StateChange{
			From: change.From.String(),
			To:   change.To.String(),
			At:   change.At,
		})
	}

	lineItems := make([]LineItem, 0, len(resp.LineItems))
	for _, item := range resp.LineItems {
		lineItems = append(lineItems, LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return OrderResponse{
		ID:           resp.ID.String(),
		Code:         resp.Code,
		Customer:     resp.Customer,
		Warehouse:    resp.Warehouse,
		Notes:        resp.Notes,
		OrderType:    resp.OrderType,
		State:        resp.State,
		History:      history,
		LineItems:    lineItems,
		Version:      resp.Version,
		TotalValue:   resp.TotalValue.String(),
		DeliveryDate: resp.DeliveryDate,
		Sealed:       resp.Sealed,
		UpdatedAt:    resp.UpdatedAt,
	}
}

func summaryToResponse(resp queries.ListOrdersQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:           resp.ID.String(),
		Code:         resp.Code,
		Customer:     resp.Customer,
		Warehouse:    resp.Warehouse,
		OrderType:    resp.OrderType,
		State:        resp.State,
		Version:      resp.Version,
		TotalValue:   resp.TotalValue.String(),
		DeliveryDate: resp.DeliveryDate,
		UpdatedAt:    resp.UpdatedAt,
	}
}
