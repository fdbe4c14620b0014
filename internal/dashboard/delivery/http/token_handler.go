package http

import (
	"net/http"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TokenHandler handles HTTP requests for token usage accounting.
type TokenHandler struct {
	tokenService service.TokenService
	logger       *logger.Logger
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokenService service.TokenService, logger *logger.Logger) *TokenHandler {
	return &TokenHandler{tokenService: tokenService, logger: logger}
}

// RegisterRoutes registers the token routes to the Echo group.
func (h *TokenHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.SummaryByModel)
	g.POST("", h.RecordUsage)
}

// SummaryByModel godoc
// @Summary Token usage per model
// @Description Sum of input, output and total tokens per model, heaviest first
// @Tags tokens
// @Produce  json
// @Success 200 {array} entity.TokenUsageByModel
// @Failure 500 {object} dto.ErrorResponse
// @Router /tokens [get]
func (h *TokenHandler) SummaryByModel(c echo.Context) error {
	rows, err := h.tokenService.SummaryByModel(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get token usage"})
	}
	return c.JSON(http.StatusOK, rows)
}

// RecordUsage godoc
// @Summary Record token usage
// @Description Record the tokens consumed by one model call. Negative counts are stored as zero.
// @Tags tokens
// @Accept  json
// @Produce  json
// @Param   usage  body    dto.RecordTokenUsageRequest   true    "Usage to record"
// @Success 201 {object} entity.TokenUsage
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tokens [post]
func (h *TokenHandler) RecordUsage(c echo.Context) error {
	var req dto.RecordTokenUsageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	usage, err := h.tokenService.Record(c.Request().Context(), req.Model, req.TokensIn, req.TokensOut)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to record token usage"})
	}
	return c.JSON(http.StatusCreated, usage)
}
