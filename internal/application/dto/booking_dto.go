package dto

// BookingStep1Request paso 1 del formulario de reserva: servicio, opción
// de precio y fecha de cita (AAAA-MM-DD).
type BookingStep1Request struct {
	ServiceID       string `json:"service_id"`
	PricingTier     string `json:"pricing_tier"`
	AppointmentDate string `json:"appointment_date"`
}

// MeasurementsDTO medidas de la clienta en pulgadas.
type MeasurementsDTO struct {
	Bust         float64 `json:"bust"`
	Waist        float64 `json:"waist"`
	Hip          float64 `json:"hip"`
	SleeveLength float64 `json:"sleeve_length"`
	TotalLength  float64 `json:"total_length"`
}

// BookingStep2Request paso 2: fuente de medidas ("shop" | "custom"),
// medidas si son propias e instrucciones especiales opcionales.
type BookingStep2Request struct {
	MeasurementSource   string           `json:"measurement_source"`
	Measurements        *MeasurementsDTO `json:"measurements,omitempty"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
}

// CreateBookingRequest envío completo del formulario de dos pasos.
type CreateBookingRequest struct {
	Step1 BookingStep1Request `json:"step1"`
	Step2 BookingStep2Request `json:"step2"`
}

// BookingStep1Response certificación del paso 1, para que el cliente
// avance al paso 2 sin re-validar.
type BookingStep1Response struct {
	ServiceID       string `json:"service_id"`
	ServiceName     string `json:"service_name"`
	PricingTier     string `json:"pricing_tier"`
	Price           int    `json:"price"`
	AppointmentDate string `json:"appointment_date"`
}

// CreateBookingResponse confirmación de la reserva creada.
type CreateBookingResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
