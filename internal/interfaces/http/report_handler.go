package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// ReportHandler descarga de reportes.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.InventoryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}
