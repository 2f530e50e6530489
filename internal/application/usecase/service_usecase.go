package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/sastreria-api/internal/application/dto"
	"github.com/tu-usuario/sastreria-api/internal/domain"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
)

// ServiceUseCase CRUD del catálogo de servicios. La lectura es pública;
// las mutaciones llegan solo desde rutas admin (el guard las filtra antes).
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create da de alta un servicio. Invariante: al menos una opción de
// precio, todas con precio > 0.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	pricing, err := toPricing(in.Pricing)
	if err != nil {
		return nil, err
	}
	service := &entity.Service{
		ID:                   uuid.New().String(),
		Name:                 in.Name,
		Description:          in.Description,
		Category:             in.Category,
		Pricing:              pricing,
		EstimatedDays:        in.EstimatedDays,
		RequiresMeasurements: in.RequiresMeasurements,
	}
	if err := validateService(service); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// validateService invariantes comunes al alta y a la edición: nombre
// presente y días estimados positivos. El pricing se valida en toPricing.
func validateService(s *entity.Service) error {
	if s.Name == "" || s.EstimatedDays <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// GetByID obtiene un servicio por ID; ErrNotFound si no existe.
func (uc *ServiceUseCase) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(service), nil
}

// List lista el catálogo completo.
func (uc *ServiceUseCase) List(ctx context.Context) ([]dto.ServiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// Update reemplaza un servicio completo. Aplica los mismos invariantes
// que el alta: pricing no vacío con precios > 0, nombre y días estimados.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	pricing, err := toPricing(in.Pricing)
	if err != nil {
		return nil, err
	}
	service := &entity.Service{
		ID:                   id,
		Name:                 in.Name,
		Description:          in.Description,
		Category:             in.Category,
		Pricing:              pricing,
		EstimatedDays:        in.EstimatedDays,
		RequiresMeasurements: in.RequiresMeasurements,
	}
	if err := validateService(service); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina un servicio del catálogo. Los pedidos existentes guardan
// la referencia débil por ID y no se tocan.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPricing(in []dto.PricingTierDTO) ([]entity.PricingTier, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := make([]entity.PricingTier, 0, len(in))
	for _, t := range in {
		if t.Type == "" || t.Price <= 0 {
			return nil, domain.ErrInvalidInput
		}
		out = append(out, entity.PricingTier{
			Type:        t.Type,
			Price:       t.Price,
			Description: t.Description,
		})
	}
	return out, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	pricing := make([]dto.PricingTierDTO, 0, len(s.Pricing))
	for _, t := range s.Pricing {
		pricing = append(pricing, dto.PricingTierDTO{
			Type:        t.Type,
			Price:       t.Price,
			Description: t.Description,
		})
	}
	return &dto.ServiceResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Description:          s.Description,
		Category:             s.Category,
		Pricing:              pricing,
		EstimatedDays:        s.EstimatedDays,
		RequiresMeasurements: s.RequiresMeasurements,
	}
}
