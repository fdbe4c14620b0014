package http

import (
	"errors"
	"net/http"
	"strings"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// OrderHandler handles HTTP requests for the simulated order book.
type OrderHandler struct {
	orderService   service.OrderService
	signalsService service.SignalsService
	logger         *logger.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService, signalsService service.SignalsService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, signalsService: signalsService, logger: logger}
}

// RegisterRoutes registers the order routes to the Echo group.
func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetOrderBook)
	g.POST("", h.OpenOrder)
	g.POST("/auto-close", h.AutoClose)
	g.POST("/:id/complete", h.CompleteOrder)
}

// GetOrderBook godoc
// @Summary Get the order book
// @Description Pending and completed simulated orders
// @Tags orders
// @Produce  json
// @Success 200 {object} entity.OrderBook
// @Router /orders [get]
func (h *OrderHandler) GetOrderBook(c echo.Context) error {
	return c.JSON(http.StatusOK, h.orderService.Book(c.Request().Context()))
}

// OpenOrder godoc
// @Summary Open a simulated order
// @Description Open a pending order. Rejected with created=false when the ticker already has one.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order  body    dto.OpenOrderRequest   true    "Order to open"
// @Success 201 {object} dto.OpenOrderResponse
// @Success 200 {object} dto.OpenOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) OpenOrder(c echo.Context) error {
	var req dto.OpenOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if strings.TrimSpace(req.Ticker) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Ticker is required"})
	}

	created, err := h.orderService.OpenPending(c.Request().Context(), req.Ticker, req.Score, req.State, req.EntryPrice)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to open order"})
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, dto.OpenOrderResponse{Created: created})
}

// CompleteOrder godoc
// @Summary Complete an order manually
// @Description Close a pending order with a result label. Unknown labels are stored as simulada.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Order ID"
// @Param   result  body    dto.CompleteOrderRequest   true    "Result label"
// @Success 200 {object} entity.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/complete [post]
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	var req dto.CompleteOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	order, err := h.orderService.CompleteManually(c.Request().Context(), c.Param("id"), req.Result)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to complete order"})
	}
	return c.JSON(http.StatusOK, order)
}

// AutoClose godoc
// @Summary Close orders against the market
// @Description Close every pending order whose market price in the latest snapshot crossed its target or stop
// @Tags orders
// @Produce  json
// @Success 200 {object} dto.AutoCloseResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/auto-close [post]
func (h *OrderHandler) AutoClose(c echo.Context) error {
	ctx := c.Request().Context()
	view := h.signalsService.Latest(ctx)

	closed, err := h.orderService.AutoCloseFromMarket(ctx, view.Snapshot)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to close orders"})
	}
	return c.JSON(http.StatusOK, dto.AutoCloseResponse{Closed: closed})
}
