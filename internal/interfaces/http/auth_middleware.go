package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	"github.com/tu-usuario/sastreria-api/internal/domain/access"
	"github.com/tu-usuario/sastreria-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// Identity resuelve el Principal de la petición a partir del Bearer token.
// Nunca rechaza: una sesión ausente, corrupta o expirada degrada a anónimo
// y es el guard de capacidades quien decide si la ruta lo admite.
func Identity(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Next()
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || userID == "" {
			// Un token con rol pero sin identidad no otorga nada.
			return c.Next()
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware Identity).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware Identity).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPrincipal reconstruye el Principal de la petición actual.
// Sin identidad o con rol desconocido el resultado es el principal anónimo.
func GetPrincipal(c *fiber.Ctx) access.Principal {
	userID := GetUserID(c)
	if userID == "" {
		return access.Anonymous()
	}
	return access.Principal{Role: access.ParseRole(GetRole(c)), UserID: userID}
}

// RequireAuth exige un principal autenticado; para endpoints como /me
// donde la ruta no tiene una capability asociada pero sí requiere sesión.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetPrincipal(c).Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		return c.Next()
	}
}
