package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreteriapro/admin-api/internal/application/analytics"
)

// AnalyticsHandler tablero de ventas (protegido).
type AnalyticsHandler struct {
	uc *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Resumen de ventas del día y del mes en curso
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(backendCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
