package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbooking "github.com/tu-usuario/sastreria-api/internal/application/booking"
	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	domainbooking "github.com/tu-usuario/sastreria-api/internal/domain/booking"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memServiceRepo struct {
	services map[string]*entity.Service
}

func (r *memServiceRepo) Create(ctx context.Context, s *entity.Service) error { return nil }
func (r *memServiceRepo) Update(ctx context.Context, s *entity.Service) error { return nil }
func (r *memServiceRepo) Delete(ctx context.Context, id string) error         { return nil }
func (r *memServiceRepo) List(ctx context.Context) ([]*entity.Service, error) { return nil, nil }
func (r *memServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	return r.services[id], nil
}

type memOrderRepo struct {
	byID map[string]*entity.Order
}

func (r *memOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	cp := *o
	r.byID[o.ID] = &cp
	return nil
}
func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (r *memOrderRepo) ListByCustomer(ctx context.Context, c string) ([]*entity.Order, error) {
	return nil, nil
}
func (r *memOrderRepo) ListAll(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	return nil, nil
}
func (r *memOrderRepo) UpdateStatus(ctx context.Context, id, s string, u time.Time) error { return nil }
func (r *memOrderRepo) Delete(ctx context.Context, id string) error                       { return nil }
func (r *memOrderRepo) CountByStatus(ctx context.Context) (map[string]int, error)         { return nil, nil }

var (
	testToday = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	catalogo = map[string]*entity.Service{
		"service-1": {
			ID:   "service-1",
			Name: "Arreglo de Blusa",
			Pricing: []entity.PricingTier{
				{Type: "Simple", Price: 500},
			},
			EstimatedDays: 3,
		},
		"service-2": {
			ID:   "service-2",
			Name: "Confección de Kurti",
			Pricing: []entity.PricingTier{
				{Type: "Casual", Price: 600},
				{Type: "Party Wear", Price: 1200},
			},
			EstimatedDays:        5,
			RequiresMeasurements: true,
		},
	}
)

func newBookingUseCase(t *testing.T) (*appbooking.UseCase, *memOrderRepo) {
	t.Helper()
	validator := domainbooking.NewValidatorAt(&memServiceRepo{services: catalogo},
		func() time.Time { return testToday })
	repo := &memOrderRepo{byID: map[string]*entity.Order{}}
	return appbooking.NewUseCaseAt(validator, repo, func() time.Time { return testToday }), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateStep1 como operación independiente
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateStep1_ResuelvePrecioDeLaOpcion(t *testing.T) {
	uc, _ := newBookingUseCase(t)
	out, fieldErrs, err := uc.ValidateStep1(context.Background(), dto.BookingStep1Request{
		ServiceID:       "service-2",
		PricingTier:     "Party Wear",
		AppointmentDate: "2024-03-12",
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, "Confección de Kurti", out.ServiceName)
	assert.Equal(t, 1200, out.Price)
	assert.Equal(t, "2024-03-12", out.AppointmentDate)
}

func TestValidateStep1_FechaDeAyer(t *testing.T) {
	uc, _ := newBookingUseCase(t)
	_, fieldErrs, err := uc.ValidateStep1(context.Background(), dto.BookingStep1Request{
		ServiceID:       "service-1",
		AppointmentDate: "2024-03-04",
	})
	require.NoError(t, err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs["appointmentDate"], "pasado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — el pedido solo existe tras la certificación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_VisitaAlTaller_RoundTrip(t *testing.T) {
	uc, repo := newBookingUseCase(t)
	out, fieldErrs, err := uc.Create(context.Background(), "user-1", dto.CreateBookingRequest{
		Step1: dto.BookingStep1Request{
			ServiceID:       "service-1",
			AppointmentDate: "2024-03-05", // hoy, válido
		},
		Step2: dto.BookingStep2Request{MeasurementSource: "shop"},
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotEmpty(t, out.OrderID)
	assert.Equal(t, "pending", out.Status)

	// Round-trip: lo persistido coincide campo a campo con lo certificado.
	persisted, err := repo.GetByID(context.Background(), out.OrderID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "user-1", persisted.CustomerID)
	assert.Equal(t, "service-1", persisted.ServiceID)
	assert.Equal(t, "Simple", persisted.PricingTier, "la opción implícita queda explícita al persistir")
	assert.Equal(t, "pending", persisted.Status)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), persisted.AppointmentDate)
	assert.Nil(t, persisted.Measurements, "con visita al taller no se guardan medidas")
}

func TestCreate_MedidasPropias_RoundTrip(t *testing.T) {
	uc, repo := newBookingUseCase(t)
	out, fieldErrs, err := uc.Create(context.Background(), "user-1", dto.CreateBookingRequest{
		Step1: dto.BookingStep1Request{
			ServiceID:       "service-2",
			PricingTier:     "Casual",
			AppointmentDate: "2024-03-20",
		},
		Step2: dto.BookingStep2Request{
			MeasurementSource: "custom",
			Measurements: &dto.MeasurementsDTO{
				Bust: 36, Waist: 30, Hip: 38, SleeveLength: 18, TotalLength: 42,
			},
			SpecialInstructions: "Colores vivos",
		},
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	persisted, _ := repo.GetByID(context.Background(), out.OrderID)
	require.NotNil(t, persisted.Measurements)
	assert.Equal(t, 36.0, persisted.Measurements.Bust)
	assert.Equal(t, "Casual", persisted.PricingTier)
	assert.Equal(t, "Colores vivos", persisted.SpecialInstructions)
}

func TestCreate_RechazoDelPaso1_NoPersisteNada(t *testing.T) {
	uc, repo := newBookingUseCase(t)
	_, fieldErrs, err := uc.Create(context.Background(), "user-1", dto.CreateBookingRequest{
		Step1: dto.BookingStep1Request{
			ServiceID:       "service-2",
			AppointmentDate: "2024-03-20", // falta la opción de precio
		},
		Step2: dto.BookingStep2Request{MeasurementSource: "shop"},
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "pricingTier")
	assert.Empty(t, repo.byID, "un rechazo no deja rastro persistido")
}

func TestCreate_RechazoDelPaso2_NoPersisteNada(t *testing.T) {
	uc, repo := newBookingUseCase(t)
	_, fieldErrs, err := uc.Create(context.Background(), "user-1", dto.CreateBookingRequest{
		Step1: dto.BookingStep1Request{
			ServiceID:       "service-1",
			AppointmentDate: "2024-03-20",
		},
		Step2: dto.BookingStep2Request{
			MeasurementSource: "custom",
			Measurements:      &dto.MeasurementsDTO{Bust: 0, Waist: 30, Hip: 38, SleeveLength: 18, TotalLength: 42},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "bust")
	assert.Empty(t, repo.byID)
}
