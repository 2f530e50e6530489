// Package booking implementa el pipeline de validación de reservas en dos
// etapas, espejo del formulario de dos pasos pero invocable por separado:
// la etapa 2 no re-valida la etapa 1, y cada regla se puede ejercitar
// aislada en tests. La salida es un valor certificado que las capas
// siguientes pueden confiar sin re-comprobar; ningún fallo se lanza como
// pánico, siempre se retorna un valor discriminado.
package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

// Fuentes de medidas del paso 2.
const (
	MeasurementSourceShop   = "shop"   // la clienta visita el taller
	MeasurementSourceCustom = "custom" // la clienta aporta sus medidas
)

// FieldErrors mapa campo → mensaje legible. Implementa error para viajar
// por las firmas habituales sin perder la granularidad por campo.
type FieldErrors map[string]string

// Error concatena los campos violados en orden estable.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validación fallida"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Step1Input entrada cruda del paso 1 del formulario. La fecha llega como
// string YYYY-MM-DD tal como la envía el selector de fecha.
type Step1Input struct {
	ServiceID       string
	PricingTier     string
	AppointmentDate string
}

// CertifiedStep1 resultado certificado del paso 1: servicio resuelto,
// opción de precio definitiva y fecha de cita válida. Si el servicio tiene
// una sola opción de precio, PricingTier es esa opción implícita aunque el
// formulario haya enviado otra cosa.
type CertifiedStep1 struct {
	Service         *entity.Service
	PricingTier     string
	AppointmentDate time.Time
}

// MeasurementsInput medidas crudas del paso 2 (pulgadas).
type MeasurementsInput struct {
	Bust         float64
	Waist        float64
	Hip          float64
	SleeveLength float64
	TotalLength  float64
}

// Step2Input entrada cruda del paso 2.
type Step2Input struct {
	MeasurementSource   string
	Measurements        *MeasurementsInput
	SpecialInstructions string
}

// CertifiedBookingRequest solicitud de reserva certificada, lista para
// persistirse como pedido con estado inicial pending. Measurements es nil
// cuando la clienta visitará el taller.
type CertifiedBookingRequest struct {
	ServiceID           string
	PricingTier         string
	AppointmentDate     time.Time
	Measurements        *entity.CustomerMeasurements
	SpecialInstructions string
}

// Validator valida reservas. Necesita el catálogo de servicios para
// resolver ServiceID; Now se inyecta para fijar el "hoy" en tests.
type Validator struct {
	services repository.ServiceRepository
	now      func() time.Time
}

// NewValidator construye el validador con reloj de sistema.
func NewValidator(services repository.ServiceRepository) *Validator {
	return &Validator{services: services, now: time.Now}
}

// NewValidatorAt construye el validador con un reloj inyectado.
func NewValidatorAt(services repository.ServiceRepository, now func() time.Time) *Validator {
	return &Validator{services: services, now: now}
}

// ValidateStep1 aplica todas las reglas del paso 1 y reporta juntos todos
// los campos violados, sin cortocircuito. Los campos del paso 1 no son
// independientes entre sí: cambiar ServiceID invalida la opción de precio
// elegida antes, por eso el tier se resuelve contra el servicio recién
// resuelto en cada llamada. Un error de infraestructura del catálogo se
// retorna aparte, nunca disfrazado de error de validación.
func (v *Validator) ValidateStep1(ctx context.Context, in Step1Input) (*CertifiedStep1, FieldErrors, error) {
	errs := FieldErrors{}

	var service *entity.Service
	if in.ServiceID == "" {
		errs["serviceId"] = "seleccione un servicio"
	} else {
		found, err := v.services.GetByID(ctx, in.ServiceID)
		if err != nil {
			return nil, nil, fmt.Errorf("resolver servicio %s: %w", in.ServiceID, err)
		}
		if found == nil {
			errs["serviceId"] = "el servicio no existe"
		} else {
			service = found
		}
	}

	tier := ""
	if service != nil {
		switch {
		case len(service.Pricing) == 1:
			// Opción implícita: un tier enviado de más se ignora, no se rechaza.
			tier = service.Pricing[0].Type
		case in.PricingTier == "":
			errs["pricingTier"] = "seleccione una opción de precio"
		default:
			matched, ok := service.TierByType(in.PricingTier)
			if !ok {
				errs["pricingTier"] = "la opción de precio no pertenece al servicio"
			} else {
				tier = matched.Type
			}
		}
	}

	var appointment time.Time
	if in.AppointmentDate == "" {
		errs["appointmentDate"] = "seleccione una fecha de cita"
	} else {
		parsed, err := time.Parse("2006-01-02", in.AppointmentDate)
		if err != nil {
			errs["appointmentDate"] = "fecha inválida, use el formato AAAA-MM-DD"
		} else if beforeToday(parsed, v.now()) {
			errs["appointmentDate"] = "la fecha de cita no puede estar en el pasado"
		} else {
			appointment = parsed
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return &CertifiedStep1{
		Service:         service,
		PricingTier:     tier,
		AppointmentDate: appointment,
	}, nil, nil
}

// ValidateStep2 aplica las reglas del paso 2 sobre un paso 1 ya
// certificado. Función pura: no toca el repositorio. Con visita al taller
// la solicitud certificada no lleva medidas; con medidas propias exige las
// cinco, todas estrictamente positivas, y las copia sin conversión (pulgadas).
func (v *Validator) ValidateStep2(step1 *CertifiedStep1, in Step2Input) (*CertifiedBookingRequest, FieldErrors) {
	errs := FieldErrors{}

	var measurements *entity.CustomerMeasurements
	switch in.MeasurementSource {
	case MeasurementSourceShop:
		// Nada más que validar; las medidas se toman en el taller.
	case MeasurementSourceCustom:
		if in.Measurements == nil {
			errs["measurements"] = "ingrese sus medidas"
			break
		}
		m := in.Measurements
		if m.Bust <= 0 {
			errs["bust"] = "ingrese una medida de busto válida"
		}
		if m.Waist <= 0 {
			errs["waist"] = "ingrese una medida de cintura válida"
		}
		if m.Hip <= 0 {
			errs["hip"] = "ingrese una medida de cadera válida"
		}
		if m.SleeveLength <= 0 {
			errs["sleeveLength"] = "ingrese un largo de manga válido"
		}
		if m.TotalLength <= 0 {
			errs["totalLength"] = "ingrese un largo total válido"
		}
		if len(errs) == 0 {
			measurements = &entity.CustomerMeasurements{
				Bust:         m.Bust,
				Waist:        m.Waist,
				Hip:          m.Hip,
				SleeveLength: m.SleeveLength,
				TotalLength:  m.TotalLength,
			}
		}
	default:
		errs["measurementSource"] = "indique cómo se tomarán las medidas"
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &CertifiedBookingRequest{
		ServiceID:           step1.Service.ID,
		PricingTier:         step1.PricingTier,
		AppointmentDate:     step1.AppointmentDate,
		Measurements:        measurements,
		SpecialInstructions: in.SpecialInstructions,
	}, nil
}

// beforeToday compara solo la fecha, ignorando la hora: una cita para hoy
// es válida.
func beforeToday(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}
