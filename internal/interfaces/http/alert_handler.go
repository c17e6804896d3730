package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// AlertHandler consulta y marca alertas.
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas (más recientes primero)
// @Tags         alerts
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídas"
// @Success      200     {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.QueryBool("unread", false)))
}

// MarkRead godoc
// @Summary      Marcar alerta como leída
// @Tags         alerts
// @Security     Bearer
// @Param        id   path  string  true  "ID de la alerta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/read [patch]
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
