package repository

import (
	"context"

	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// ListCustomers lista solo usuarios con rol customer (pantalla admin).
	ListCustomers(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountCustomers(ctx context.Context) (int, error)
}
