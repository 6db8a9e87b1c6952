// Package http exposes the ordering use cases over a REST API built on echo.
// It binds request bodies, invokes command and query handlers, and maps
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	addItemHandler            commands.AddItemCommandHandler
	changeItemQuantityHandler commands.ChangeItemQuantityCommandHandler
	removeItemHandler         commands.RemoveItemCommandHandler
	applyDiscountHandler      commands.ApplyDiscountCommandHandler
	confirmOrderHandler       commands.ConfirmOrderCommandHandler

	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	changeItemQuantityHandler commands.ChangeItemQuantityCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	applyDiscountHandler commands.ApplyDiscountCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		addItemHandler:            addItemHandler,
		changeItemQuantityHandler: changeItemQuantityHandler,
		removeItemHandler:         removeItemHandler,
		applyDiscountHandler:      applyDiscountHandler,
		confirmOrderHandler:       confirmOrderHandler,
		getOrderSummaryHandler:    getOrderSummaryHandler,
		logger:                    logger,
	}
}

// RegisterRoutes mounts all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/items", s.AddItem)
	api.PUT("/orders/:id/items/:itemId", s.ChangeItemQuantity)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveItem)
	api.POST("/orders/:id/discount", s.ApplyDiscount)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.GET("/orders/:id/summary", s.GetOrderSummary)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	Currency string `json:"currency"`
}

type addItemRequest struct {
	SKU            string `json:"sku"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

type changeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type applyDiscountRequest struct {
	Code string `json:"code"`
}

type eventResponse struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload"`
}

type createOrderResponse struct {
	OrderID string          `json:"orderId"`
	Events  []eventResponse `json:"events"`
}

type addItemResponse struct {
	ItemID string          `json:"itemId"`
	Events []eventResponse `json:"events"`
}

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

type orderSummaryResponse struct {
	Status   string                `json:"status"`
	Items    []orderSummaryItem    `json:"items"`
	Discount *orderSummaryDiscount `json:"discount"`
	Total    string                `json:"total"`
}

type orderSummaryItem struct {
	ItemID    string `json:"itemId"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type orderSummaryDiscount struct {
	Code    string  `json:"code"`
	Percent float64 `json:"percent"`
}

// CreateOrder handles POST /api/v1/orders - opens a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID: result.OrderID,
		Events:  toEventResponses(result.Events),
	})
}

// AddItem handles POST /api/v1/orders/:id/items - adds or merges a line item.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req addItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddItemCommand(orderID, req.SKU, req.UnitPriceCents, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	result, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addItemResponse{
		ItemID: result.ItemID,
		Events: toEventResponses(result.Events),
	})
}

// ChangeItemQuantity handles PUT /api/v1/orders/:id/items/:itemId.
func (s *Server) ChangeItemQuantity(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	itemID, err := kernel.NewOrderItemID(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req changeQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemQuantityCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity data: "+err.Error())
	}

	events, err := s.changeItemQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventsResponse{Events: toEventResponses(events)})
}

// RemoveItem handles DELETE /api/v1/orders/:id/items/:itemId.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	itemID, err := kernel.NewOrderItemID(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	events, err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventsResponse{Events: toEventResponses(events)})
}

// ApplyDiscount handles POST /api/v1/orders/:id/discount.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req applyDiscountRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyDiscountCommand(orderID, req.Code)
	if err != nil {
		return badRequest(ctx, "Invalid discount data: "+err.Error())
	}

	events, err := s.applyDiscountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventsResponse{Events: toEventResponses(events)})
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	events, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventsResponse{Events: toEventResponses(events)})
}

// GetOrderSummary handles GET /api/v1/orders/:id/summary.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query data: "+err.Error())
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	items := make([]orderSummaryItem, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = orderSummaryItem{
			ItemID:    item.ItemID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	var discount *orderSummaryDiscount
	if summary.Discount != nil {
		discount = &orderSummaryDiscount{
			Code:    summary.Discount.Code,
			Percent: summary.Discount.Percent,
		}
	}

	return ctx.JSON(http.StatusOK, orderSummaryResponse{
		Status:   summary.Status,
		Items:    items,
		Discount: discount,
		Total:    summary.Total,
	})
}

// writeError maps use case failures onto HTTP status codes: missing
// aggregates become 404, broken business rules 409, bad values 400, and
// everything else 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrDomainRuleViolated):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		s.logger.Error("unhandled use case error",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// toEventResponses renders domain events with their original payload field names.
func toEventResponses(events []order.DomainEvent) []eventResponse {
	responses := make([]eventResponse, len(events))
	for i, event := range events {
		responses[i] = eventResponse{
			Type:       event.EventType(),
			OccurredAt: event.OccurredAt(),
			Payload:    eventPayload(event),
		}
	}
	return responses
}

func eventPayload(event order.DomainEvent) map[string]any {
	switch e := event.(type) {
	case order.OrderCreated:
		return map[string]any{"orderId": e.OrderID}
	case order.ItemAddedToOrder:
		return map[string]any{"orderId": e.OrderID, "itemId": e.ItemID, "sku": e.SKU, "qty": e.Quantity}
	case order.OrderItemQuantityChanged:
		return map[string]any{"orderId": e.OrderID, "itemId": e.ItemID, "from": e.From, "to": e.To}
	case order.OrderItemRemoved:
		return map[string]any{"orderId": e.OrderID, "itemId": e.ItemID}
	case order.DiscountAppliedToOrder:
		return map[string]any{"orderId": e.OrderID, "code": e.Code, "percent": e.Percent}
	case order.OrderConfirmed:
		return map[string]any{"orderId": e.OrderID, "totalCents": e.TotalCents, "currency": e.Currency}
	default:
		return map[string]any{}
	}
}
