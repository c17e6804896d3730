package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
)

// InventoryHandler movimientos de stock y lista de reposición.
type InventoryHandler struct {
	movements     *inventory.MovementUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.MovementUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, replenishment: replenishment}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Entrada o salida. Sin responsable se usa el operador del token.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.movements.Register(in, GetOperator(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	return c.JSON(h.movements.List())
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos en o bajo el mínimo con la cantidad sugerida (mínimo × 1,5).
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ReplenishmentListResponse
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	return c.JSON(h.replenishment.GenerateReplenishmentList())
}
