package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (valor total, stock bajo, movimientos de 30 días,
// productos recientes, stock crítico, categorías, más vendidos).
//
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
