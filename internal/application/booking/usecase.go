// Package booking (aplicación) orquesta el flujo de reserva: el pipeline
// de validación del dominio certifica la entrada y solo entonces se
// persiste un pedido. Un pedido nunca existe sin entrada certificada.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	domainbooking "github.com/tu-usuario/sastreria-api/internal/domain/booking"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

// UseCase caso de uso de reservas.
type UseCase struct {
	validator *domainbooking.Validator
	orders    repository.OrderRepository
	now       func() time.Time
}

// NewUseCase construye el caso de uso de reservas.
func NewUseCase(validator *domainbooking.Validator, orders repository.OrderRepository) *UseCase {
	return &UseCase{validator: validator, orders: orders, now: time.Now}
}

// NewUseCaseAt igual que NewUseCase con reloj inyectado, para tests.
func NewUseCaseAt(validator *domainbooking.Validator, orders repository.OrderRepository, now func() time.Time) *UseCase {
	return &UseCase{validator: validator, orders: orders, now: now}
}

// ValidateStep1 certifica el paso 1 sin crear nada: el formulario avanza
// al paso 2 con el precio resuelto. FieldErrors != nil es rechazo de
// formulario; error != nil es fallo de infraestructura.
func (uc *UseCase) ValidateStep1(ctx context.Context, in dto.BookingStep1Request) (*dto.BookingStep1Response, domainbooking.FieldErrors, error) {
	cert, fieldErrs, err := uc.validator.ValidateStep1(ctx, toStep1Input(in))
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}
	tier, _ := cert.Service.TierByType(cert.PricingTier)
	return &dto.BookingStep1Response{
		ServiceID:       cert.Service.ID,
		ServiceName:     cert.Service.Name,
		PricingTier:     cert.PricingTier,
		Price:           tier.Price,
		AppointmentDate: cert.AppointmentDate.Format("2006-01-02"),
	}, nil, nil
}

// Create valida ambos pasos y persiste el pedido resultante con estado
// inicial pending. El borrador de reserva es transitorio: si cualquier
// etapa rechaza, no queda rastro persistido.
func (uc *UseCase) Create(ctx context.Context, customerID string, in dto.CreateBookingRequest) (*dto.CreateBookingResponse, domainbooking.FieldErrors, error) {
	step1, fieldErrs, err := uc.validator.ValidateStep1(ctx, toStep1Input(in.Step1))
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}

	certified, fieldErrs := uc.validator.ValidateStep2(step1, toStep2Input(in.Step2))
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	now := uc.now()
	order := &entity.Order{
		ID:                  uuid.New().String(),
		CustomerID:          customerID,
		ServiceID:           certified.ServiceID,
		PricingTier:         certified.PricingTier,
		Status:              entity.StatusPending,
		AppointmentDate:     certified.AppointmentDate,
		Measurements:        certified.Measurements,
		SpecialInstructions: certified.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("crear pedido: %w", err)
	}
	return &dto.CreateBookingResponse{OrderID: order.ID, Status: order.Status}, nil, nil
}

func toStep1Input(in dto.BookingStep1Request) domainbooking.Step1Input {
	return domainbooking.Step1Input{
		ServiceID:       in.ServiceID,
		PricingTier:     in.PricingTier,
		AppointmentDate: in.AppointmentDate,
	}
}

func toStep2Input(in dto.BookingStep2Request) domainbooking.Step2Input {
	out := domainbooking.Step2Input{
		MeasurementSource:   in.MeasurementSource,
		SpecialInstructions: in.SpecialInstructions,
	}
	if in.Measurements != nil {
		out.Measurements = &domainbooking.MeasurementsInput{
			Bust:         in.Measurements.Bust,
			Waist:        in.Measurements.Waist,
			Hip:          in.Measurements.Hip,
			SleeveLength: in.Measurements.SleeveLength,
			TotalLength:  in.Measurements.TotalLength,
		}
	}
	return out
}
