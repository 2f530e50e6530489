package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

// OrderFilter filtros opcionales para el listado administrativo de pedidos.
type OrderFilter struct {
	CustomerID string
	ServiceID  string
	Status     string
}

// OrderRepository define el puerto de persistencia para Order. El núcleo
// nunca habla con el almacén directamente: solo llama estas operaciones, y
// solo después de que sus propias puertas de política/validación pasaron.
// Reintentos y consistencia interna son responsabilidad del adaptador.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)
	ListAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	// UpdateStatus persiste el resultado de una transición: status y
	// updated_at en una sola escritura (sin estado intermedio observable).
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}
