package http

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	"github.com/tu-usuario/sastreria-api/internal/domain/access"
)

// RequireCapability protege un grupo de rutas con el evaluador de acceso.
// El veredicto se traduce a HTTP: Allow sigue la cadena, falta de sesión
// devuelve 401 con redirección a /login conservando la ruta origen, y un
// rol insuficiente devuelve 403 con redirección a la portada.
func RequireCapability(required access.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch access.Evaluate(GetPrincipal(c), required) {
		case access.Allow:
			return c.Next()
		case access.DenyRedirectLogin:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.RedirectResponse{
				Code:       "LOGIN_REQUIRED",
				RedirectTo: "/login",
				From:       c.Path(),
			})
		default: // access.DenyRedirectHome
			return c.Status(fiber.StatusForbidden).JSON(dto.RedirectResponse{
				Code:       "FORBIDDEN",
				RedirectTo: "/",
				From:       c.Path(),
			})
		}
	}
}

// Navigation devuelve las rutas de la aplicación alcanzables por el
// principal actual; el cliente la usa para armar su menú sin duplicar
// la tabla de capacidades.
func Navigation(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	reachable := make([]string, 0, 8)
	for route, required := range access.Routes() {
		if access.Evaluate(p, required) == access.Allow {
			reachable = append(reachable, route)
		}
	}
	sort.Strings(reachable)
	return c.JSON(dto.NavigationResponse{
		Role:   string(p.Role),
		Routes: reachable,
	})
}
