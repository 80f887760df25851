// Package http exposes the order, kitchen and payment use cases over a JSON API.
package http

import (
	"context"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// UseCase is any command or query handler.
type UseCase[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers lists the use cases served over HTTP.
type Handlers struct {
	CreateOrder             UseCase[commands.CreateOrderCommand, commands.CreateOrderResult]
	AddItems                UseCase[commands.AddItemsToOrderCommand, commands.AddItemsToOrderResult]
	RemoveItem              UseCase[commands.RemoveOrderItemCommand, commands.ItemChangeResult]
	UpdateItemQuantity      UseCase[commands.UpdateOrderItemQuantityCommand, commands.ItemChangeResult]
	MarkItemServed          UseCase[commands.MarkItemServedCommand, commands.ItemChangeResult]
	UpdateKitchenItemStatus UseCase[commands.UpdateKitchenItemStatusCommand, commands.ItemChangeResult]
	ProcessPayment          UseCase[commands.ProcessPaymentCommand, commands.ProcessPaymentResult]

	GetActiveOrders           UseCase[queries.GetActiveOrdersQuery, []queries.GetActiveOrdersQueryResponse]
	GetCookingQueue           UseCase[queries.GetPrioritizedCookingQueueQuery, []services.RankedItem]
	GetKitchenDashboard       UseCase[queries.GetKitchenDashboardGroupedQuery, []services.TableGroup]
	GetOrderForPayment        UseCase[queries.GetOrderForPaymentQuery, queries.GetOrderForPaymentQueryResponse]
	CheckMenuItemAvailability UseCase[queries.CheckMenuItemAvailabilityQuery, queries.CheckMenuItemAvailabilityQueryResponse]
}

// Server translates HTTP requests into commands and queries and their results into JSON.
type Server struct {
	h   Handlers
	doc *openapi3.T
}

// NewServer creates a server. doc is served as the API description; it may be nil.
func NewServer(h Handlers, doc *openapi3.T) *Server {
	return &Server{h: h, doc: doc}
}

// RegisterHandlers mounts every route on e.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.OpenAPI)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.POST("/orders/:orderId/items", s.AddItems)
	v1.DELETE("/orders/:orderId/items/:itemId", s.RemoveItem)
	v1.PUT("/orders/:orderId/items/:itemId/quantity", s.UpdateItemQuantity)
	v1.POST("/orders/:orderId/items/:itemId/serve", s.MarkItemServed)
	v1.GET("/orders/:orderId/payment", s.GetOrderForPayment)
	v1.POST("/orders/:orderId/payment", s.ProcessPayment)

	v1.GET("/kitchen/queue", s.GetCookingQueue)
	v1.GET("/kitchen/dashboard", s.GetKitchenDashboard)
	v1.PUT("/kitchen/orders/:orderId/items/:itemId/status", s.UpdateKitchenItemStatus)

	v1.GET("/menu/:menuItemId/availability", s.CheckMenuItemAvailability)
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) OpenAPI(ctx echo.Context) error {
	if s.doc == nil {
		return ctx.NoContent(http.StatusNotFound)
	}
	return ctx.JSON(http.StatusOK, s.doc)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.ParseType(body.Type)
	if err != nil {
		return writeError(ctx, err)
	}
	items, err := toItemInputs(body.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	var tableID *kernel.UUID
	if body.TableID != nil {
		id, idErr := kernel.UUIDFromBytes(body.TableID[:])
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		tableID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		orderType,
		tableID,
		items,
		body.Notes,
		order.Customer{Name: body.CustomerName, Phone: body.CustomerPhone},
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{
		OrderID:  result.OrderID.String(),
		Number:   result.Number.String(),
		Total:    result.Total,
		ItemIDs:  toIDs(result.ItemIDs),
		Warnings: toWarnings(result.Warnings),
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.h.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toActiveOrders(orders))
}

// AddItems handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddItems(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewItems
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	items, err := toItemInputs(body.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddItemsToOrderCommand(orderID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.AddItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ItemsAdded{
		ItemIDs:  toIDs(result.ItemIDs),
		Total:    result.Total,
		Warnings: toWarnings(result.Warnings),
	})
}

// RemoveItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, itemID, err := pathIDs(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}
	result, err := s.h.RemoveItem.Handle(ctx.Request().Context(), cmd)
	return s.itemChange(ctx, result, err)
}

// UpdateItemQuantity handles PUT /api/v1/orders/{orderId}/items/{itemId}/quantity.
func (s *Server) UpdateItemQuantity(ctx echo.Context) error {
	orderID, itemID, err := pathIDs(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body QuantityChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderItemQuantityCommand(orderID, itemID, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}
	result, err := s.h.UpdateItemQuantity.Handle(ctx.Request().Context(), cmd)
	return s.itemChange(ctx, result, err)
}

// MarkItemServed handles POST /api/v1/orders/{orderId}/items/{itemId}/serve.
func (s *Server) MarkItemServed(ctx echo.Context) error {
	orderID, itemID, err := pathIDs(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkItemServedCommand(orderID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}
	result, err := s.h.MarkItemServed.Handle(ctx.Request().Context(), cmd)
	return s.itemChange(ctx, result, err)
}

// UpdateKitchenItemStatus handles PUT /api/v1/kitchen/orders/{orderId}/items/{itemId}/status.
func (s *Server) UpdateKitchenItemStatus(ctx echo.Context) error {
	orderID, itemID, err := pathIDs(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body KitchenStatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	target, err := order.ParseItemStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateKitchenItemStatusCommand(orderID, itemID, target)
	if err != nil {
		return writeError(ctx, err)
	}
	result, err := s.h.UpdateKitchenItemStatus.Handle(ctx.Request().Context(), cmd)
	return s.itemChange(ctx, result, err)
}

func (s *Server) itemChange(ctx echo.Context, result commands.ItemChangeResult, err error) error {
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ItemChange{
		Total:    result.Total,
		Warnings: toWarnings(result.Warnings),
	})
}

// GetCookingQueue handles GET /api/v1/kitchen/queue.
func (s *Server) GetCookingQueue(ctx echo.Context) error {
	items, err := s.h.GetCookingQueue.Handle(ctx.Request().Context(), queries.NewGetPrioritizedCookingQueueQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRankedItems(items))
}

// GetKitchenDashboard handles GET /api/v1/kitchen/dashboard.
func (s *Server) GetKitchenDashboard(ctx echo.Context) error {
	groups, err := s.h.GetKitchenDashboard.Handle(ctx.Request().Context(), queries.NewGetKitchenDashboardGroupedQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTableGroups(groups))
}

// GetOrderForPayment handles GET /api/v1/orders/{orderId}/payment.
func (s *Server) GetOrderForPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderForPaymentQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.h.GetOrderForPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toBill(view))
}

// ProcessPayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewPayment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	method, err := order.ParseMethod(body.Method)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, method, body.CustomerMoney, body.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.ProcessPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toPayment(result))
}

// CheckMenuItemAvailability handles GET /api/v1/menu/{menuItemId}/availability?quantity=N.
func (s *Server) CheckMenuItemAvailability(ctx echo.Context) error {
	menuItemID, err := pathUUID(ctx, "menuItemId")
	if err != nil {
		return writeError(ctx, err)
	}
	quantity, err := queryInt(ctx, "quantity", 1)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewCheckMenuItemAvailabilityQuery(menuItemID, quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.CheckMenuItemAvailability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAvailability(result))
}
