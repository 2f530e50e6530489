package usecase

import (
	"context"

	"github.com/tu-usuario/sastreria-api/internal/application/auth"
	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

// CustomerUseCase listado administrativo de clientas.
type CustomerUseCase struct {
	users repository.UserRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(users repository.UserRepository) *CustomerUseCase {
	return &CustomerUseCase{users: users}
}

// List lista clientas con paginación (solo usuarios con rol customer;
// los admins no aparecen en la pantalla de clientas).
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.users.ListCustomers(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.users.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerListResponse{
		Customers: make([]dto.UserResponse, 0, len(list)),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, u := range list {
		out.Customers = append(out.Customers, *auth.ToUserResponse(u))
	}
	return out, nil
}
