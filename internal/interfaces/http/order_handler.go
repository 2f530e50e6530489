package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	"github.com/tu-usuario/sastreria-api/internal/application/orders"
	"github.com/tu-usuario/sastreria-api/internal/domain"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

// OrderHandler maneja pedidos: listado por rol, detalle, ciclo de vida
// y el comprobante PDF.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListMine godoc
// @Summary      Mis pedidos (clienta)
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Security     BearerAuth
// @Router       /api/my-orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListForPrincipal(c.Context(), GetPrincipal(c), repository.OrderFilter{})
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar pedidos (admin)
// @Tags         orders
// @Produce      json
// @Param        status       query  string  false  "filtrar por estado"
// @Param        customer_id  query  string  false  "filtrar por clienta"
// @Param        service_id   query  string  false  "filtrar por servicio"
// @Success      200  {object}  dto.OrderListResponse
// @Security     BearerAuth
// @Router       /api/admin/orders [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	filter := repository.OrderFilter{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		ServiceID:  c.Query("service_id"),
	}
	out, err := h.uc.ListForPrincipal(c.Context(), GetPrincipal(c), filter)
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un pedido
// @Description  La clienta solo ve sus propios pedidos; el admin ve todos.
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetForPrincipal(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar estado de un pedido (admin)
// @Description  Solo transiciones hacia adelante; delivered es terminal.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "order id"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeStatus(c.Context(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido (admin)
// @Tags         orders
// @Param        id   path  string  true  "order id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return mapOrderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Slip godoc
// @Summary      Comprobante PDF del pedido (admin)
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "order id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/orders/{id}/slip [get]
func (h *OrderHandler) Slip(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Slip(c.Context(), GetPrincipal(c), id)
	if err != nil {
		return mapOrderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pedido-%s.pdf"`, id))
	return c.Send(pdf)
}

// Dashboard godoc
// @Summary      Panel admin: pedidos por estado y clientas
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Security     BearerAuth
// @Router       /api/admin/dashboard [get]
func (h *OrderHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// mapOrderError traduce errores de dominio de pedidos a HTTP.
func mapOrderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para este rol"})
	case errors.Is(err, domain.ErrIllegalTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ILLEGAL_TRANSITION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
