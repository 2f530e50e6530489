package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sastreria-api/internal/domain/booking"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de servicios en memoria para los tests
// ──────────────────────────────────────────────────────────────────────────────

type fakeServiceRepo struct {
	services map[string]*entity.Service
	failWith error
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *entity.Service) error { return nil }
func (f *fakeServiceRepo) Update(ctx context.Context, s *entity.Service) error { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeServiceRepo) List(ctx context.Context) ([]*entity.Service, error) { return nil, nil }

func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.services[id], nil
}

var (
	// Fijamos "hoy" para que las fechas de los tests no caduquen.
	testToday = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	singleTierService = &entity.Service{
		ID:       "service-simple",
		Name:     "Arreglo de Blusa",
		Category: entity.CategoryBlouse,
		Pricing: []entity.PricingTier{
			{Type: "Simple", Price: 500, Description: "Arreglo básico"},
		},
		EstimatedDays:        3,
		RequiresMeasurements: false,
	}

	multiTierService = &entity.Service{
		ID:       "service-blusa",
		Name:     "Confección de Blusa",
		Category: entity.CategoryBlouse,
		Pricing: []entity.PricingTier{
			{Type: "Simple", Price: 500, Description: "Diseño básico"},
			{Type: "Designer", Price: 800, Description: "Diseño con apliques"},
		},
		EstimatedDays:        7,
		RequiresMeasurements: true,
	}
)

func newValidator(t *testing.T) *booking.Validator {
	t.Helper()
	repo := &fakeServiceRepo{services: map[string]*entity.Service{
		singleTierService.ID: singleTierService,
		multiTierService.ID:  multiTierService,
	}}
	return booking.NewValidatorAt(repo, func() time.Time { return testToday })
}

func validStep1(t *testing.T, v *booking.Validator, in booking.Step1Input) *booking.CertifiedStep1 {
	t.Helper()
	cert, fieldErrs, err := v.ValidateStep1(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, fieldErrs, "el paso 1 debe certificar sin errores de campo")
	require.NotNil(t, cert)
	return cert
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso 1
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateStep1_TodoValido(t *testing.T) {
	v := newValidator(t)
	cert := validStep1(t, v, booking.Step1Input{
		ServiceID:       "service-blusa",
		PricingTier:     "Designer",
		AppointmentDate: "2024-03-10",
	})
	assert.Equal(t, "service-blusa", cert.Service.ID)
	assert.Equal(t, "Designer", cert.PricingTier)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), cert.AppointmentDate)
}

func TestValidateStep1_CitaParaHoyEsValida(t *testing.T) {
	v := newValidator(t)
	cert := validStep1(t, v, booking.Step1Input{
		ServiceID:       "service-simple",
		AppointmentDate: "2024-03-05", // exactamente hoy
	})
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), cert.AppointmentDate)
}

func TestValidateStep1_FechaEnElPasado(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs, err := v.ValidateStep1(context.Background(), booking.Step1Input{
		ServiceID:       "service-simple",
		AppointmentDate: "2024-03-04", // ayer
	})
	require.NoError(t, err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "appointmentDate")
	assert.NotContains(t, fieldErrs, "serviceId", "solo el campo violado se reporta")
}

func TestValidateStep1_ReportaTodosLosCamposJuntos(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs, err := v.ValidateStep1(context.Background(), booking.Step1Input{})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "serviceId")
	assert.Contains(t, fieldErrs, "appointmentDate")
}

func TestValidateStep1_ServicioInexistente(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs, err := v.ValidateStep1(context.Background(), booking.Step1Input{
		ServiceID:       "no-existe",
		AppointmentDate: "2024-03-10",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "serviceId")
}

func TestValidateStep1_MultiTierExigeOpcion(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs, err := v.ValidateStep1(context.Background(), booking.Step1Input{
		ServiceID:       "service-blusa",
		AppointmentDate: "2024-03-10",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "pricingTier")
}

func TestValidateStep1_TierDeOtroServicioSeRechaza(t *testing.T) {
	// Cambiar de servicio invalida la opción elegida antes: los campos del
	// paso 1 no son independientes entre sí.
	v := newValidator(t)
	_, fieldErrs, err := v.ValidateStep1(context.Background(), booking.Step1Input{
		ServiceID:       "service-blusa",
		PricingTier:     "Traditional", // tier de otro catálogo
		AppointmentDate: "2024-03-10",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "pricingTier")
}

func TestValidateStep1_TierSobranteEnServicioDeUnaOpcionSeIgnora(t *testing.T) {
	v := newValidator(t)
	cert := validStep1(t, v, booking.Step1Input{
		ServiceID:       "service-simple",
		PricingTier:     "Designer", // sobrante: el servicio tiene una sola opción
		AppointmentDate: "2024-03-10",
	})
	assert.Equal(t, "Simple", cert.PricingTier, "la opción implícita manda, no se rechaza")
}

func TestValidateStep1_FechaMalFormada(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs, err := v.ValidateStep1(context.Background(), booking.Step1Input{
		ServiceID:       "service-simple",
		AppointmentDate: "10/03/2024",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "appointmentDate")
}

func TestValidateStep1_FalloDeCatalogoNoEsErrorDeValidacion(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	v := booking.NewValidatorAt(&fakeServiceRepo{failWith: repoErr},
		func() time.Time { return testToday })

	_, fieldErrs, err := v.ValidateStep1(context.Background(), booking.Step1Input{
		ServiceID:       "service-simple",
		AppointmentDate: "2024-03-10",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, fieldErrs, "un fallo de infraestructura no se disfraza de error de campo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso 2
// ──────────────────────────────────────────────────────────────────────────────

func step1For(t *testing.T, serviceID string) *booking.CertifiedStep1 {
	t.Helper()
	return validStep1(t, newValidator(t), booking.Step1Input{
		ServiceID:       serviceID,
		PricingTier:     "Designer",
		AppointmentDate: "2024-03-10",
	})
}

func TestValidateStep2_VisitaAlTaller(t *testing.T) {
	v := newValidator(t)
	req, fieldErrs := v.ValidateStep2(step1For(t, "service-blusa"), booking.Step2Input{
		MeasurementSource: booking.MeasurementSourceShop,
	})
	require.Nil(t, fieldErrs)
	require.NotNil(t, req)
	assert.Nil(t, req.Measurements, "con visita al taller la solicitud no lleva medidas")
	assert.Equal(t, "service-blusa", req.ServiceID)
	assert.Equal(t, "Designer", req.PricingTier)
}

func TestValidateStep2_MedidasPropiasCompletas(t *testing.T) {
	v := newValidator(t)
	req, fieldErrs := v.ValidateStep2(step1For(t, "service-blusa"), booking.Step2Input{
		MeasurementSource: booking.MeasurementSourceCustom,
		Measurements: &booking.MeasurementsInput{
			Bust: 36, Waist: 30, Hip: 38, SleeveLength: 18, TotalLength: 42,
		},
		SpecialInstructions: "Usar tela de seda",
	})
	require.Nil(t, fieldErrs)
	require.NotNil(t, req.Measurements)
	// Las medidas viajan textuales, sin conversión de unidades.
	assert.Equal(t, 36.0, req.Measurements.Bust)
	assert.Equal(t, 42.0, req.Measurements.TotalLength)
	assert.Equal(t, "Usar tela de seda", req.SpecialInstructions)
}

func TestValidateStep2_MedidaEnCeroRechazaSoloEseCampo(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs := v.ValidateStep2(step1For(t, "service-blusa"), booking.Step2Input{
		MeasurementSource: booking.MeasurementSourceCustom,
		Measurements: &booking.MeasurementsInput{
			Bust: 0, Waist: 30, Hip: 38, SleeveLength: 18, TotalLength: 42,
		},
	})
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "bust")
	assert.NotContains(t, fieldErrs, "waist", "los campos válidos no se marcan")
	assert.NotContains(t, fieldErrs, "hip")
}

func TestValidateStep2_MedidasNegativasTodasReportadas(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs := v.ValidateStep2(step1For(t, "service-blusa"), booking.Step2Input{
		MeasurementSource: booking.MeasurementSourceCustom,
		Measurements:      &booking.MeasurementsInput{Bust: -1, Waist: 0, Hip: -2, SleeveLength: 0, TotalLength: 0},
	})
	for _, f := range []string{"bust", "waist", "hip", "sleeveLength", "totalLength"} {
		assert.Contains(t, fieldErrs, f)
	}
}

func TestValidateStep2_MedidasPropiasSinMedidas(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs := v.ValidateStep2(step1For(t, "service-blusa"), booking.Step2Input{
		MeasurementSource: booking.MeasurementSourceCustom,
	})
	assert.Contains(t, fieldErrs, "measurements")
}

func TestValidateStep2_FuenteDesconocida(t *testing.T) {
	v := newValidator(t)
	_, fieldErrs := v.ValidateStep2(step1For(t, "service-blusa"), booking.Step2Input{
		MeasurementSource: "telepatía",
	})
	assert.Contains(t, fieldErrs, "measurementSource")
}

// ──────────────────────────────────────────────────────────────────────────────
// FieldErrors como error
// ──────────────────────────────────────────────────────────────────────────────

func TestFieldErrors_MensajeEstable(t *testing.T) {
	errs := booking.FieldErrors{"waist": "inválida", "bust": "inválida"}
	assert.Equal(t, "validación fallida: bust: inválida; waist: inválida", errs.Error())
}
