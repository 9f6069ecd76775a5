package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dulceria/sweetshop-api/internal/application/dto"
	"github.com/dulceria/sweetshop-api/internal/domain"
	"github.com/dulceria/sweetshop-api/internal/domain/entity"
	"github.com/dulceria/sweetshop-api/pkg/jwt"
)

// Locals keys para el principal de la petición en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y adjunta el principal (user_id, role)
// a c.Locals. El header debe tener exactamente la forma "Bearer <token>": dos
// partes separadas por un espacio, la primera literalmente "Bearer". Cualquier
// desviación (header ausente, esquema distinto, partes de más, token inválido o
// expirado) responde 401 con el mismo mensaje genérico, sin distinguir el motivo.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c)
		}
		userID, role, err := jwt.Parse(jwtSecret, parts[1])
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole devuelve un middleware RBAC parametrizado por el conjunto de roles
// permitidos para la ruta. Rechaza 403 si no hay principal adjunto, si el rol no
// pertenece al enum o si no está en el conjunto; el mensaje nunca menciona roles.
// Funciona igual si se invoca sin AuthMiddleware previo (locals vacíos).
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" || !entity.ValidRole(role) {
			return forbidden(c)
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return forbidden(c)
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: domain.ErrUnauthorized.Message})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: domain.ErrForbidden.Message})
}

// GetUserID devuelve el user id del principal (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRole devuelve el rol del principal (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
