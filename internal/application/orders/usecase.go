// Package orders implementa los casos de uso sobre pedidos ya creados:
// consulta con control de acceso por rol, cambio de estado vía la máquina
// de ciclo de vida y la eliminación administrativa.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	"github.com/tu-usuario/sastreria-api/internal/domain"
	"github.com/tu-usuario/sastreria-api/internal/domain/access"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/domain/lifecycle"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

// UseCase casos de uso de pedidos.
type UseCase struct {
	orders   repository.OrderRepository
	services repository.ServiceRepository
	users    repository.UserRepository
	slips    SlipGenerator
	now      func() time.Time
}

// NewUseCase construye el caso de uso de pedidos. slips puede ser nil si
// el despliegue no genera comprobantes.
func NewUseCase(orders repository.OrderRepository, services repository.ServiceRepository, users repository.UserRepository, slips SlipGenerator) *UseCase {
	return &UseCase{orders: orders, services: services, users: users, slips: slips, now: time.Now}
}

// NewUseCaseAt igual que NewUseCase con reloj inyectado, para tests.
func NewUseCaseAt(orders repository.OrderRepository, services repository.ServiceRepository, users repository.UserRepository, slips SlipGenerator, now func() time.Time) *UseCase {
	uc := NewUseCase(orders, services, users, slips)
	uc.now = now
	return uc
}

// ListForPrincipal lista pedidos según el rol: una clienta ve solo los
// suyos, un admin los ve todos (con filtros), un visitante ninguno.
func (uc *UseCase) ListForPrincipal(ctx context.Context, p access.Principal, filter repository.OrderFilter) (*dto.OrderListResponse, error) {
	var (
		list []*entity.Order
		err  error
	)
	switch p.Role {
	case access.RoleAdmin:
		list, err = uc.orders.ListAll(ctx, filter)
	case access.RoleCustomer:
		list, err = uc.orders.ListByCustomer(ctx, p.UserID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(list))}
	for _, o := range list {
		out.Orders = append(out.Orders, *toOrderResponse(o))
	}
	return out, nil
}

// GetForPrincipal devuelve un pedido si el principal puede verlo: la
// dueña o un admin. Cualquier otro actor recibe ErrForbidden.
func (uc *UseCase) GetForPrincipal(ctx context.Context, p access.Principal, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if p.Role != access.RoleAdmin && order.CustomerID != p.UserID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// ChangeStatus ejecuta el ciclo leer-decidir-escribir de una transición:
// trae el snapshot fresco del pedido, la máquina de estados decide, y el
// resultado se escribe en una sola actualización (status + updated_at).
// No hay guard de concurrencia entre dos admins: gana la última escritura.
func (uc *UseCase) ChangeStatus(ctx context.Context, actor access.Principal, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	updated, err := lifecycle.RequestTransition(order, in.Status, actor.Role, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.orders.UpdateStatus(ctx, updated.ID, updated.Status, updated.UpdatedAt); err != nil {
		return nil, fmt.Errorf("persistir transición: %w", err)
	}
	return toOrderResponse(updated), nil
}

// Delete elimina un pedido. No es un paso del ciclo de vida: es la
// operación administrativa explícita, solo admin.
func (uc *UseCase) Delete(ctx context.Context, actor access.Principal, orderID string) error {
	if actor.Role != access.RoleAdmin {
		return domain.ErrForbidden
	}
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orders.Delete(ctx, orderID)
}

// Dashboard arma las tarjetas del panel admin: pedidos por estado (todos
// los estados presentes, en cero si no hay pedidos) y total de clientas.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	counts, err := uc.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int, len(lifecycle.Statuses()))
	total := 0
	for _, s := range lifecycle.Statuses() {
		byStatus[s] = counts[s]
		total += counts[s]
	}
	customers, err := uc.users.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		OrdersByStatus: byStatus,
		TotalOrders:    total,
		TotalCustomers: customers,
	}, nil
}

// Slip genera el comprobante PDF de un pedido (solo admin, para entregar
// en taller).
func (uc *UseCase) Slip(ctx context.Context, actor access.Principal, orderID string) ([]byte, error) {
	if actor.Role != access.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if uc.slips == nil {
		return nil, fmt.Errorf("generador de comprobantes no configurado")
	}
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	// El servicio es una referencia débil: si fue eliminado del catálogo
	// el comprobante se emite igual, con un marcador en su lugar.
	service, err := uc.services.GetByID(ctx, order.ServiceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	customer, err := uc.users.GetByID(ctx, order.CustomerID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return uc.slips.GenerateOrderSlip(ctx, order, service, customer)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		ServiceID:           o.ServiceID,
		PricingTier:         o.PricingTier,
		Status:              o.Status,
		AppointmentDate:     o.AppointmentDate,
		SpecialInstructions: o.SpecialInstructions,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
	if o.Measurements != nil {
		out.Measurements = &dto.MeasurementsDTO{
			Bust:         o.Measurements.Bust,
			Waist:        o.Measurements.Waist,
			Hip:          o.Measurements.Hip,
			SleeveLength: o.Measurements.SleeveLength,
			TotalLength:  o.Measurements.TotalLength,
		}
	}
	return out
}
