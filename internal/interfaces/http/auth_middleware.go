package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

// LocalOperator key de c.Locals con el nombre del operador del token.
const LocalOperator = "operator"

// AuthMiddleware valida el Bearer Token JWT y guarda el operador en c.Locals.
// Con secret vacío la autenticación está desactivada y deja pasar todo.
func AuthMiddleware(secret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		operator, err := jwt.Parse(secret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalOperator, operator)
		return c.Next()
	}
}

// GetOperator devuelve el operador del contexto; vacío sin token o con auth desactivada.
func GetOperator(c *fiber.Ctx) string {
	v := c.Locals(LocalOperator)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
