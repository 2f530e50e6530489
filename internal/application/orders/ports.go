package orders

import (
	"context"

	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

// SlipGenerator genera el comprobante PDF de un pedido (lo implementa
// infrastructure/pdf; el uso de interfaz evita acoplar la aplicación a
// la librería de PDF).
type SlipGenerator interface {
	GenerateOrderSlip(ctx context.Context, order *entity.Order, service *entity.Service, customer *entity.User) ([]byte, error)
}
