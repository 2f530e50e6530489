package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	"github.com/tu-usuario/sastreria-api/internal/application/usecase"
	"github.com/tu-usuario/sastreria-api/internal/domain"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// memServiceRepo catálogo en memoria.
type memServiceRepo struct {
	services map[string]*entity.Service
}

func newMemServiceRepo(services ...*entity.Service) *memServiceRepo {
	r := &memServiceRepo{services: make(map[string]*entity.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *memServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	r.services[s.ID] = s
	return nil
}

func (r *memServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	return r.services[id], nil
}

func (r *memServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	out := make([]*entity.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *memServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	r.services[s.ID] = s
	return nil
}

func (r *memServiceRepo) Delete(ctx context.Context, id string) error {
	delete(r.services, id)
	return nil
}

func blusaService() *entity.Service {
	return &entity.Service{
		ID:       "service-1",
		Name:     "Blouse Stitching",
		Category: entity.CategoryBlouse,
		Pricing: []entity.PricingTier{
			{Type: "Simple", Price: 500, Description: "Diseño básico"},
		},
		EstimatedDays:        7,
		RequiresMeasurements: true,
	}
}

func validUpdate() dto.UpdateServiceRequest {
	return dto.UpdateServiceRequest{
		Name:     "Blouse Stitching",
		Category: entity.CategoryBlouse,
		Pricing: []dto.PricingTierDTO{
			{Type: "Simple", Price: 550},
		},
		EstimatedDays: 7,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

// Un id que no resuelve a ningún servicio es ErrNotFound, nunca una
// respuesta nula con éxito.
func TestServiceGetByID_Inexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo())

	out, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestServiceGetByID_Existente(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo(blusaService()))

	out, err := uc.GetByID(context.Background(), "service-1")
	require.NoError(t, err)
	assert.Equal(t, "Blouse Stitching", out.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — mismos invariantes que el alta
// ──────────────────────────────────────────────────────────────────────────────

func TestServiceUpdate_NombreVacio_Rechazado(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo(blusaService()))

	in := validUpdate()
	in.Name = ""
	_, err := uc.Update(context.Background(), "service-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la edición no debe aceptar un servicio que el alta rechazaría")
}

func TestServiceUpdate_DiasEstimadosCero_Rechazado(t *testing.T) {
	repo := newMemServiceRepo(blusaService())
	uc := usecase.NewServiceUseCase(repo)

	in := validUpdate()
	in.EstimatedDays = 0
	_, err := uc.Update(context.Background(), "service-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El servicio persistido no cambió.
	kept, _ := repo.GetByID(context.Background(), "service-1")
	assert.Equal(t, 7, kept.EstimatedDays)
}

func TestServiceUpdate_PricingVacio_Rechazado(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo(blusaService()))

	in := validUpdate()
	in.Pricing = nil
	_, err := uc.Update(context.Background(), "service-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceUpdate_Valido_Reemplaza(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo(blusaService()))

	out, err := uc.Update(context.Background(), "service-1", validUpdate())
	require.NoError(t, err)
	assert.Equal(t, 550, out.Pricing[0].Price)
}
