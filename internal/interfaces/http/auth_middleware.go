package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/pkg/jwt"
)

// LocalSession clave de la sesión autenticada en c.Locals.
const LocalSession = "session"

// AuthMiddleware valida el Bearer Token emitido por Supabase Auth y deja la sesión
// (entity.Session) en c.Locals.
func AuthMiddleware(jwtSecret, audience string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
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
		id, err := jwt.Parse(jwtSecret, audience, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSession, entity.Session{
			UserID:    id.UserID,
			Email:     id.Email,
			Role:      id.Role,
			ExpiresAt: id.ExpiresAt,
		})
		return c.Next()
	}
}

// RequireRole exige que el rol del token esté entre los permitidos. Los tokens de
// Supabase firmados con la anon key llevan rol "anon"; los de usuario "authenticated".
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetSession(c).Role
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no trae rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

// GetSession devuelve la sesión del contexto. Vacía si no pasó por AuthMiddleware.
func GetSession(c *fiber.Ctx) entity.Session {
	s, _ := c.Locals(LocalSession).(entity.Session)
	return s
}

// GetUserID devuelve el id de usuario de la sesión como texto ("" si no hay sesión).
func GetUserID(c *fiber.Ctx) string {
	s := GetSession(c)
	if s.IsZero() {
		return ""
	}
	return s.UserID.String()
}
