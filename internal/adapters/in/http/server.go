// Package http exposes the order management API over HTTP.
// It coordinates between echo handlers and application use cases, translating
// transport concerns into commands and queries and domain failures back into
// the uniform response envelope.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
)

const (
	defaultListLimit     = 100
	defaultSeedCount     = 10
	defaultSimulateBatch = 10
)

// Server handles HTTP requests for the order management API.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	processOrderHandler       commands.ProcessOrderCommandHandler
	simulateProcessingHandler commands.SimulateProcessingCommandHandler
	seedOrdersHandler         commands.SeedOrdersCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	getRecentOrdersHandler queries.GetRecentOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	processOrderHandler commands.ProcessOrderCommandHandler,
	simulateProcessingHandler commands.SimulateProcessingCommandHandler,
	seedOrdersHandler commands.SeedOrdersCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getRecentOrdersHandler queries.GetRecentOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		processOrderHandler:       processOrderHandler,
		simulateProcessingHandler: simulateProcessingHandler,
		seedOrdersHandler:         seedOrdersHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderByIDHandler:       getOrderByIDHandler,
		getRecentOrdersHandler:    getRecentOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the given group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/health", s.Health)
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders", s.GetOrders)
	g.GET("/orders/:orderId", s.GetOrderByID)
	g.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	g.GET("/monitor/recent", s.GetRecentOrders)
	g.POST("/seed-mock-data", s.SeedMockData)
	g.POST("/process/:orderId", s.ProcessOrder)
	g.POST("/simulate-processing", s.SimulateProcessing)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ok(map[string]string{"status": "ok"}))
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, "Invalid request body"))
	}

	customer, err := order.NewCustomer(req.CustomerID, req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	currency := req.Currency
	if currency == "" {
		currency = kernel.DefaultCurrency
	}
	total, err := kernel.NewMoney(req.TotalAmount, currency)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	channel, err := order.ChannelFromName(req.OrderType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	cmd, err := commands.NewCreateOrderCommand(
		customer, total, channel,
		req.ItemID, req.PaymentMethod, req.ShippingAddress, req.Notes,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, ok(orderResponseFromAggregate(created)))
}

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit := intQueryParam(ctx, "limit", defaultListLimit)
	offset := intQueryParam(ctx, "offset", 0)

	query, err := queries.NewGetOrdersQuery(limit, offset)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderResponseFromRow(row))
	}

	return ctx.JSON(http.StatusOK, ok(response))
}

// GetOrderByID handles GET /orders/:orderId.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	row, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, ok(orderResponseFromRow(row)))
}

// UpdateOrderStatus handles PUT /orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, "Invalid request body"))
	}

	status, err := order.StatusFromName(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.Note)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, ok(orderResponseFromAggregate(updated)))
}

// GetRecentOrders handles GET /monitor/recent.
func (s *Server) GetRecentOrders(ctx echo.Context) error {
	minutes := intQueryParam(ctx, "minutes", 0)
	limit := intQueryParam(ctx, "limit", 0)

	// out-of-range values are clamped by the query constructor
	query, err := queries.NewGetRecentOrdersQuery(minutes, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	resp, err := s.getRecentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve recent orders")
	}

	return ctx.JSON(http.StatusOK, ok(recentOrdersResponse(resp)))
}

// SeedMockData handles POST /seed-mock-data.
func (s *Server) SeedMockData(ctx echo.Context) error {
	count := intQueryParam(ctx, "count", defaultSeedCount)

	cmd, err := commands.NewSeedOrdersCommand(count)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	if err = s.seedOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to seed orders")
	}

	return ctx.JSON(http.StatusCreated, ok(map[string]int{"seeded": count}))
}

// ProcessOrder handles POST /process/:orderId.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	result, err := s.processOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to process order")
	}

	return ctx.JSON(http.StatusOK, ok(result))
}

// SimulateProcessing handles POST /simulate-processing.
func (s *Server) SimulateProcessing(ctx echo.Context) error {
	cmd, err := commands.NewSimulateProcessingCommand(defaultSimulateBatch)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	if err = s.simulateProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to simulate processing")
	}

	return ctx.JSON(http.StatusOK, ok(map[string]string{"status": "completed"}))
}

// writeError maps domain failures to HTTP responses. NotFound becomes 404,
// validation failures become 400, everything else is a 500 with a generic
// message so internals do not leak to clients.
func (s *Server) writeError(ctx echo.Context, err error, fallback string) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, fail(CodeNotFound, err.Error()))
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, fail(CodeBadRequest, err.Error()))
	}

	return ctx.JSON(http.StatusInternalServerError, fail(CodeInternal, fallback))
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
