package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sastreria-api/internal/application/auth"
	appbooking "github.com/tu-usuario/sastreria-api/internal/application/booking"
	"github.com/tu-usuario/sastreria-api/internal/application/orders"
	"github.com/tu-usuario/sastreria-api/internal/application/usecase"
	"github.com/tu-usuario/sastreria-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ServiceUC  *usecase.ServiceUseCase
	CustomerUC *usecase.CustomerUseCase
	BookingUC  *appbooking.UseCase
	OrderUC    *orders.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Identity corre en todo /api y
// resuelve el principal; cada grupo declara su capability mínima y el
// guard aplica la misma política que la tabla de rutas del cliente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", Identity(deps.JWTSecret))

	// Navegación: rutas alcanzables por el principal actual (público).
	api.Get("/navigation", Navigation)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", RequireAuth(), authHandler.Me)

	// Catálogo de servicios (lectura pública)
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services := api.Group("/services")
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)

	// Reservas y pedidos propios (clienta; el admin hereda la capability)
	bookingHandler := NewBookingHandler(deps.BookingUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	customerArea := api.Group("/", RequireCapability(access.CapabilityCustomer))
	customerArea.Post("/bookings/validate-step1", bookingHandler.ValidateStep1)
	customerArea.Post("/bookings", bookingHandler.Create)
	customerArea.Get("/my-orders", orderHandler.ListMine)
	customerArea.Get("/orders/:id", orderHandler.GetByID)

	// Zona admin
	admin := api.Group("/admin", RequireCapability(access.CapabilityAdmin))
	admin.Get("/dashboard", orderHandler.Dashboard)
	admin.Get("/orders", orderHandler.ListAll)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)
	admin.Delete("/orders/:id", orderHandler.Delete)
	admin.Get("/orders/:id/slip", orderHandler.Slip)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	admin.Get("/customers", customerHandler.List)

	admin.Post("/services", serviceHandler.Create)
	admin.Put("/services/:id", serviceHandler.Update)
	admin.Delete("/services/:id", serviceHandler.Delete)
}
