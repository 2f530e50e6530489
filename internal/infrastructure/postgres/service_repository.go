package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/sastreria-api/internal/domain"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
// Las opciones de precio se guardan como JSONB: el catálogo es pequeño y
// las opciones viajan siempre completas con su servicio.
type ServiceRepo struct {
	pool *pgxpool.Pool
}

// NewServiceRepository construye el adaptador de persistencia del catálogo.
func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	pricing, err := json.Marshal(service.Pricing)
	if err != nil {
		return fmt.Errorf("marshal pricing: %w", err)
	}
	query := `
		INSERT INTO services (id, name, description, category, pricing, estimated_days, requires_measurements)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		service.ID, service.Name, service.Description, service.Category,
		pricing, service.EstimatedDays, service.RequiresMeasurements,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID; nil si no existe.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	query := `
		SELECT id, name, description, category, pricing, estimated_days, requires_measurements
		FROM services WHERE id = $1`
	s, err := scanService(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return s, nil
}

// List lista el catálogo completo ordenado por nombre.
func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, name, description, category, pricing, estimated_days, requires_measurements
		FROM services ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update reemplaza un servicio completo.
func (r *ServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	pricing, err := json.Marshal(service.Pricing)
	if err != nil {
		return fmt.Errorf("marshal pricing: %w", err)
	}
	query := `
		UPDATE services SET name = $2, description = $3, category = $4, pricing = $5,
			estimated_days = $6, requires_measurements = $7
		WHERE id = $1`
	_, err = r.pool.Exec(ctx, query,
		service.ID, service.Name, service.Description, service.Category,
		pricing, service.EstimatedDays, service.RequiresMeasurements,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var (
		s       entity.Service
		pricing []byte
	)
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &pricing,
		&s.EstimatedDays, &s.RequiresMeasurements)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(pricing, &s.Pricing); err != nil {
		return nil, fmt.Errorf("unmarshal pricing: %w", err)
	}
	return &s, nil
}
