// Package access implementa el evaluador de política de acceso por roles:
// una función pura (principal, capability) → veredicto, sin efectos
// secundarios, reutilizable tanto por el guard de rutas como por el
// gating de acciones dentro de una página.
package access

import "github.com/tu-usuario/sastreria-api/internal/domain/entity"

// Role rol del actor en sesión. Variante cerrada: cualquier valor no
// reconocido se degrada a RolePublic (fail closed, nunca fail open).
type Role string

const (
	RolePublic   Role = "public"
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole normaliza un rol persistido a la variante cerrada.
// Un rol desconocido o vacío es siempre el más restrictivo.
func ParseRole(s string) Role {
	switch s {
	case entity.RoleCustomer:
		return RoleCustomer
	case entity.RoleAdmin:
		return RoleAdmin
	default:
		return RolePublic
	}
}

// Capability rol mínimo necesario para alcanzar una pantalla o ejecutar
// una acción.
type Capability string

const (
	CapabilityPublic   Capability = "public"
	CapabilityCustomer Capability = "customer"
	CapabilityAdmin    Capability = "admin"
)

// Principal actor autenticado-o-no que hace la petición.
// Invariante: Role = customer|admin ⇒ UserID presente; RolePublic ⇒ vacío.
// Se construye completo en cada petición a partir del token vigente y se
// reemplaza entero en login/logout; nunca se muta parcialmente.
type Principal struct {
	Role   Role
	UserID string
}

// Anonymous el principal de un visitante sin sesión.
func Anonymous() Principal {
	return Principal{Role: RolePublic}
}

// Authenticated devuelve true si el principal tiene identidad.
func (p Principal) Authenticated() bool {
	return p.UserID != "" && (p.Role == RoleCustomer || p.Role == RoleAdmin)
}

// Decision resultado del evaluador. No existe un resultado de error:
// toda combinación de entradas cae en exactamente uno de los tres valores.
type Decision int

const (
	// Allow el principal puede continuar.
	Allow Decision = iota
	// DenyRedirectLogin sin sesión y la capability la exige: ir a /login
	// conservando la ruta intentada para volver tras autenticarse.
	DenyRedirectLogin
	// DenyRedirectHome autenticado pero sin el rol suficiente: ir a /.
	DenyRedirectHome
)

// String para logs y respuestas.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyRedirectLogin:
		return "deny_redirect_login"
	case DenyRedirectHome:
		return "deny_redirect_home"
	default:
		return "unknown"
	}
}

// Evaluate decide si el principal alcanza la capability requerida.
// Función pura de sus dos argumentos; llamarla dos veces con las mismas
// entradas produce el mismo veredicto.
func Evaluate(p Principal, required Capability) Decision {
	if required == CapabilityPublic {
		return Allow
	}
	if !p.Authenticated() {
		return DenyRedirectLogin
	}
	switch required {
	case CapabilityCustomer:
		// Un admin hereda la capability de cliente.
		if p.Role == RoleCustomer || p.Role == RoleAdmin {
			return Allow
		}
	case CapabilityAdmin:
		if p.Role == RoleAdmin {
			return Allow
		}
	}
	return DenyRedirectHome
}
