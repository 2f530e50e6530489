package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/sastreria-api/internal/domain/access"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-000000000001"

func anon() access.Principal {
	return access.Anonymous()
}

func customer() access.Principal {
	return access.Principal{Role: access.RoleCustomer, UserID: testUserID}
}

func admin() access.Principal {
	return access.Principal{Role: access.RoleAdmin, UserID: testUserID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Evaluate — matriz de política completa
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_PublicSiempreAllow(t *testing.T) {
	for _, p := range []access.Principal{anon(), customer(), admin()} {
		assert.Equal(t, access.Allow, access.Evaluate(p, access.CapabilityPublic),
			"capability public debe ser accesible para cualquier principal")
	}
}

func TestEvaluate_AnonimoEnRutaProtegida_RedirigeALogin(t *testing.T) {
	for _, c := range []access.Capability{access.CapabilityCustomer, access.CapabilityAdmin} {
		assert.Equal(t, access.DenyRedirectLogin, access.Evaluate(anon(), c),
			"un visitante sin sesión debe ser enviado a login, capability %s", c)
	}
}

func TestEvaluate_ClienteEnRutaAdmin_RedirigeAHome(t *testing.T) {
	assert.Equal(t, access.DenyRedirectHome, access.Evaluate(customer(), access.CapabilityAdmin),
		"un cliente autenticado sin rol admin va a home, no a login")
}

func TestEvaluate_AdminHeredaCapabilityDeCliente(t *testing.T) {
	assert.Equal(t, access.Allow, access.Evaluate(admin(), access.CapabilityCustomer))
}

func TestEvaluate_AdminAccedeATodo(t *testing.T) {
	for _, c := range []access.Capability{access.CapabilityPublic, access.CapabilityCustomer, access.CapabilityAdmin} {
		assert.Equal(t, access.Allow, access.Evaluate(admin(), c))
	}
}

func TestEvaluate_ClienteAccedeARutasDeCliente(t *testing.T) {
	assert.Equal(t, access.Allow, access.Evaluate(customer(), access.CapabilityCustomer))
}

// Un principal con rol privilegiado pero sin identidad viola el invariante
// y debe tratarse como no autenticado (fail closed).
func TestEvaluate_RolSinIdentidad_NoAutenticado(t *testing.T) {
	p := access.Principal{Role: access.RoleAdmin, UserID: ""}
	assert.Equal(t, access.DenyRedirectLogin, access.Evaluate(p, access.CapabilityAdmin))
}

// Idempotencia: el evaluador es una función pura de sus dos entradas.
func TestEvaluate_Idempotente(t *testing.T) {
	first := access.Evaluate(customer(), access.CapabilityAdmin)
	second := access.Evaluate(customer(), access.CapabilityAdmin)
	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ParseRole — roles desconocidos degradan a public
// ──────────────────────────────────────────────────────────────────────────────

func TestParseRole_ValoresConocidos(t *testing.T) {
	assert.Equal(t, access.RoleAdmin, access.ParseRole("admin"))
	assert.Equal(t, access.RoleCustomer, access.ParseRole("customer"))
	assert.Equal(t, access.RolePublic, access.ParseRole("public"))
}

func TestParseRole_DesconocidoDegradaAPublic(t *testing.T) {
	for _, s := range []string{"", "root", "superadmin", "ADMIN", "bodeguero"} {
		assert.Equal(t, access.RolePublic, access.ParseRole(s),
			"el rol %q no reconocido nunca debe tratarse como privilegiado", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests tabla de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestCapabilityForRoute_TablaCanonica(t *testing.T) {
	cases := []struct {
		path string
		want access.Capability
	}{
		{"/", access.CapabilityPublic},
		{"/login", access.CapabilityPublic},
		{"/register", access.CapabilityPublic},
		{"/call-us", access.CapabilityPublic},
		{"/my-orders", access.CapabilityCustomer},
		{"/book", access.CapabilityCustomer},
		{"/locate", access.CapabilityCustomer},
		{"/account", access.CapabilityCustomer},
		{"/admin/dashboard", access.CapabilityAdmin},
		{"/admin/orders", access.CapabilityAdmin},
		{"/admin/customers", access.CapabilityAdmin},
		{"/admin/services", access.CapabilityAdmin},
	}
	for _, tt := range cases {
		got, ok := access.CapabilityForRoute(tt.path)
		assert.True(t, ok, "la ruta %s debe existir", tt.path)
		assert.Equal(t, tt.want, got, "capability de %s", tt.path)
	}
}

func TestCapabilityForRoute_RutaInexistente(t *testing.T) {
	_, ok := access.CapabilityForRoute("/no-existe")
	assert.False(t, ok, "una ruta no listada es not-found, no denegada")
}
