package entity

// Categorías del catálogo de confección.
const (
	CategoryBlouse = "blouse"
	CategoryKurti  = "kurti"
	CategoryBridal = "bridal"
)

// PricingTier una opción de precio dentro de un servicio (ej. Simple / Designer).
// El precio es entero en la moneda local, siempre > 0.
type PricingTier struct {
	Type        string `json:"type"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// Service un servicio de confección del catálogo. Invariante: Pricing nunca
// está vacío; solo un admin crea, edita o elimina servicios.
type Service struct {
	ID                   string
	Name                 string
	Description          string
	Category             string // blouse, kurti, bridal
	Pricing              []PricingTier
	EstimatedDays        int
	RequiresMeasurements bool
}

// TierByType busca la opción de precio cuyo Type coincide exactamente.
func (s *Service) TierByType(tierType string) (PricingTier, bool) {
	for _, t := range s.Pricing {
		if t.Type == tierType {
			return t, true
		}
	}
	return PricingTier{}, false
}
