package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// SystemHandler salud del servicio y secciones reservadas.
type SystemHandler struct {
	store repository.InventoryReader
}

func NewSystemHandler(store repository.InventoryReader) *SystemHandler {
	return &SystemHandler{store: store}
}

// Health godoc
// @Summary      Liveness
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok", Products: len(h.store.Products())})
}

// NotImplemented responde 501 para secciones sin implementar (usuarios, configuración).
func NotImplemented(section string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("%s: %w", section, domain.ErrNotImplemented))
	}
}
