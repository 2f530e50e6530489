package repository

import (
	"context"

	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para el catálogo de
// servicios. La lectura es pública; crear/editar/eliminar es solo admin y
// esa regla vive en la capa de aplicación, no aquí.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	List(ctx context.Context) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}
