package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// FilterHandler filtro activo del listado de productos.
type FilterHandler struct {
	uc *usecase.FilterUseCase
}

func NewFilterHandler(uc *usecase.FilterUseCase) *FilterHandler {
	return &FilterHandler{uc: uc}
}

// Get godoc
// @Summary      Filtro activo
// @Tags         filter
// @Produce      json
// @Success      200  {object}  dto.FilterResponse
// @Router       /api/filter [get]
func (h *FilterHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Set godoc
// @Summary      Reemplazar el filtro activo
// @Tags         filter
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterRequest  true  "Filtro completo"
// @Success      200   {object}  dto.FilterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/filter [put]
func (h *FilterHandler) Set(c *fiber.Ctx) error {
	var in dto.FilterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Set(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Limpiar el filtro activo
// @Tags         filter
// @Security     Bearer
// @Success      204
// @Router       /api/filter [delete]
func (h *FilterHandler) Clear(c *fiber.Ctx) error {
	h.uc.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
