package http

import (
	"github.com/gofiber/fiber/v2"

	appbooking "github.com/tu-usuario/sastreria-api/internal/application/booking"
	"github.com/tu-usuario/sastreria-api/internal/application/dto"
)

// BookingHandler maneja el formulario de reserva de dos pasos.
type BookingHandler struct {
	uc *appbooking.UseCase
}

// NewBookingHandler construye el handler de reservas.
func NewBookingHandler(uc *appbooking.UseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// ValidateStep1 godoc
// @Summary      Validar paso 1 de la reserva
// @Description  Certifica servicio, opción de precio y fecha de cita antes
// @Description  de pasar a las medidas. Todos los errores de campo se
// @Description  devuelven juntos.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BookingStep1Request  true  "paso 1"
// @Success      200   {object}  dto.BookingStep1Response
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /api/bookings/validate-step1 [post]
func (h *BookingHandler) ValidateStep1(c *fiber.Ctx) error {
	var in dto.BookingStep1Request
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fields, err := h.uc.ValidateStep1(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Fields: fields})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear reserva
// @Description  Re-valida ambos pasos en el servidor y crea el pedido en
// @Description  estado pending. Un rechazo no deja rastro persistido.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "reserva completa"
// @Success      201   {object}  dto.CreateBookingResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fields, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Fields: fields})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
