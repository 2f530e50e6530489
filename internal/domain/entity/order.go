package entity

import "time"

// Estados de un pedido, persistidos como string. La secuencia canónica
// ordenada vive en el paquete lifecycle; aquí solo los valores.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusMeasuring = "measuring"
	StatusStitching = "stitching"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// CustomerMeasurements medidas tomadas por la clienta (en pulgadas).
// Solo existe cuando el pedido usa medidas propias; si la clienta visita
// el taller para tomarse medidas, el pedido no lleva este bloque.
type CustomerMeasurements struct {
	Bust         float64 `json:"bust"`
	Waist        float64 `json:"waist"`
	Hip          float64 `json:"hip"`
	SleeveLength float64 `json:"sleeveLength"`
	TotalLength  float64 `json:"totalLength"`
}

// Order un pedido de confección. Pertenece a exactamente un cliente
// (CustomerID); referencia débil a Service vía ServiceID. Tras la creación,
// Status es el único campo que el motor de ciclo de vida puede mutar;
// la eliminación es solo administrativa, no un paso del ciclo.
type Order struct {
	ID                  string
	CustomerID          string
	ServiceID           string
	PricingTier         string // coincide con el Type de una opción de Pricing del servicio
	Status              string
	AppointmentDate     time.Time
	Measurements        *CustomerMeasurements
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
