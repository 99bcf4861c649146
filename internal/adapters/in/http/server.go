// Package http implements the inbound HTTP adapter: the order-intake façade
// and the dispatch endpoints, exposed through echo.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names used by the dispatch endpoints. The caller role is asserted by
// an upstream identity collaborator and arrives as an opaque header value.
const (
	HeaderCallerRole   = "X-Caller-Role"
	HeaderOrderVersion = "X-Order-Version"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	dispatchOrderHandler commands.DispatchOrderCommandHandler
	dispatchBatchHandler commands.DispatchBatchCommandHandler

	// Query handlers
	listOrdersHandler     queries.ListOrdersQueryHandler
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	dispatchBatchHandler commands.DispatchBatchCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		deleteOrderHandler:    deleteOrderHandler,
		dispatchOrderHandler:  dispatchOrderHandler,
		dispatchBatchHandler:  dispatchBatchHandler,
		listOrdersHandler:     listOrdersHandler,
		getOrderByCodeHandler: getOrderByCodeHandler,
	}
}

// RegisterRoutes mounts all order routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:code", s.GetOrder)
	api.PUT("/orders/:code", s.UpdateOrder)
	api.DELETE("/orders/:code", s.DeleteOrder)

	api.POST("/orders/dispatch", s.DispatchBatch)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	// Orders are deferred unless the request says otherwise.
	orderTypeName := req.OrderType
	if orderTypeName == "" {
		orderTypeName = order.Deferred.String()
	}
	orderType, err := order.TypeFromString(orderTypeName)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	lineItems := make([]order.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItem, itemErr := order.NewLineItem(item.ProductID, item.Quantity)
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+itemErr.Error())
		}
		lineItems = append(lineItems, lineItem)
	}

	cmd, err := commands.NewCreateOrderCommand(req.Code, req.Customer, orderType, lineItems)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}
	if req.Warehouse != "" {
		cmd = cmd.WithWarehouse(req.Warehouse)
	}
	if req.Notes != "" {
		cmd = cmd.WithNotes(req.Notes)
	}
	if req.DeliveryDate != nil {
		cmd = cmd.WithDeliveryDate(*req.DeliveryDate)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ListOrders handles GET /api/v1/orders - retrieves order summaries,
// optionally filtered by ?state=.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery()
	if state := ctx.QueryParam("state"); state != "" {
		if _, err := order.StatusFromString(state); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid state filter: "+state)
		}
		query = query.WithState(state)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, summaryToResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:code - retrieves one order by code.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderByCodeQuery(ctx.Param("code"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.getOrderByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryOrderToResponse(resp))
}

// UpdateOrder handles PUT /api/v1/orders/:code - updates an order by code.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(ctx.Param("code"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if req.Customer != nil {
		cmd = cmd.WithCustomer(*req.Customer)
	}
	if req.Warehouse != nil {
		cmd = cmd.WithWarehouse(*req.Warehouse)
	}
	if req.Notes != nil {
		cmd = cmd.WithNotes(*req.Notes)
	}
	if req.DeliveryDate != nil {
		cmd = cmd.WithDeliveryDate(*req.DeliveryDate)
	}
	if req.ClearDate {
		cmd = cmd.WithClearedDeliveryDate()
	}
	if req.State != nil {
		state, stateErr := order.StatusFromString(*req.State)
		if stateErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid state: "+*req.State)
		}
		cmd = cmd.WithTargetState(state)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:code - removes an order by code.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("code"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch - dispatches one order.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+ctx.Param("id"))
	}

	clientVersion, err := s.clientVersion(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	role := commands.Role(ctx.Request().Header.Get(HeaderCallerRole))
	cmd, err := commands.NewDispatchOrderCommand(orderID, role, clientVersion)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DispatchResponse{
		Success: true,
		Message: "order dispatched",
		State:   result.State.String(),
		Version: result.Version,
	})
}

// DispatchBatch handles POST /api/v1/orders/dispatch - dispatches several
// orders in one transaction, tallying per-order business failures.
func (s *Server) DispatchBatch(ctx echo.Context) error {
	var req BatchDispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	role := commands.Role(ctx.Request().Header.Get(HeaderCallerRole))
	cmd, err := commands.NewDispatchBatchCommand(orderIDs, role)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.dispatchBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BatchDispatchResponse{
		Success:    true,
		Dispatched: result.Dispatched,
		Failed:     result.Failed,
	})
}

// clientVersion reads the optimistic version from the X-Order-Version header,
// falling back to the request body. Returns nil when the caller sent none.
func (s *Server) clientVersion(ctx echo.Context) (*int, error) {
	if raw := ctx.Request().Header.Get(HeaderOrderVersion); raw != "" {
		version, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errs.NewVersionIsInvalidError(HeaderOrderVersion, err)
		}
		return &version, nil
	}

	var req DispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return nil, nil //nolint:nilerr //body is optional for dispatch
	}
	return req.Version, nil
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// errorResponse maps application errors onto HTTP statuses: authorization
// failures to 403, missing objects to 404, concurrency/integrity/duplicate
// conflicts to 409, validation failures and re-dispatch attempts to 400,
// catalog trouble to 502 and everything else to 500.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrIntegrityViolation),
		errors.Is(err, errs.ErrDuplicateObject),
		errors.Is(err, product.ErrInsufficientStock):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrAlreadyDispatched),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrDependencyFailure):
		return errorJSON(ctx, http.StatusBadGateway, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err.Error())
	}
}
