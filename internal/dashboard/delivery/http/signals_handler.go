package http

import (
	"net/http"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/service"

	"github.com/labstack/echo/v4"
)

// SignalsHandler serves the latest signals snapshot.
type SignalsHandler struct {
	signalsService service.SignalsService
}

// NewSignalsHandler creates a new SignalsHandler.
func NewSignalsHandler(signalsService service.SignalsService) *SignalsHandler {
	return &SignalsHandler{signalsService: signalsService}
}

// RegisterRoutes registers the signals routes to the Echo group.
func (h *SignalsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSignals)
}

// GetSignals godoc
// @Summary Get the latest signals
// @Description Latest snapshot with its age in minutes. A missing or unreadable snapshot is returned empty and stale.
// @Tags signals
// @Produce  json
// @Success 200 {object} dto.SignalsResponse
// @Router /signals [get]
func (h *SignalsHandler) GetSignals(c echo.Context) error {
	view := h.signalsService.Latest(c.Request().Context())
	return c.JSON(http.StatusOK, dto.SignalsResponse{
		GeneratedAt:      view.Snapshot.GeneratedAt,
		FreshnessMin:     view.FreshnessMin,
		Stale:            view.Stale,
		TopOpportunities: view.Snapshot.TopOpportunities,
		Market:           view.Snapshot.Market,
		Macro:            view.Snapshot.Macro,
		News:             view.Snapshot.News,
	})
}
