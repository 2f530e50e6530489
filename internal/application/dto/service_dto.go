package dto

// PricingTierDTO una opción de precio de un servicio.
type PricingTierDTO struct {
	Type        string `json:"type" validate:"required"`
	Price       int    `json:"price" validate:"required,gt=0"`
	Description string `json:"description"`
}

// CreateServiceRequest alta de un servicio del catálogo (solo admin).
// Pricing no puede estar vacío.
type CreateServiceRequest struct {
	Name                 string           `json:"name" validate:"required,max=200"`
	Description          string           `json:"description"`
	Category             string           `json:"category" validate:"required,oneof=blouse kurti bridal"`
	Pricing              []PricingTierDTO `json:"pricing" validate:"required,min=1,dive"`
	EstimatedDays        int              `json:"estimated_days" validate:"required,gt=0"`
	RequiresMeasurements bool             `json:"requires_measurements"`
}

// UpdateServiceRequest edición de un servicio (solo admin). Misma forma
// que el alta: el catálogo se reemplaza entero, no por parches.
type UpdateServiceRequest = CreateServiceRequest

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	Category             string           `json:"category"`
	Pricing              []PricingTierDTO `json:"pricing"`
	EstimatedDays        int              `json:"estimated_days"`
	RequiresMeasurements bool             `json:"requires_measurements"`
}
