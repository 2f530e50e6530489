// Package lifecycle implementa la máquina de estados del pedido.
// La secuencia es estrictamente ordenada y las transiciones son solo hacia
// adelante: se permite saltar estados intermedios (el admin puede elegir
// cualquier estado posterior del selector) pero nunca retroceder ni repetir
// el estado actual. Solo un admin conduce transiciones; los clientes
// observan el estado, no lo mueven.
package lifecycle

import (
	"time"

	"github.com/tu-usuario/sastreria-api/internal/domain"
	"github.com/tu-usuario/sastreria-api/internal/domain/access"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

// statusOrder secuencia canónica. Las transiciones se validan por
// comparación de índices contra esta lista, no enumerando pares, para que
// agregar un estado no desincronice la tabla.
var statusOrder = []string{
	entity.StatusPending,
	entity.StatusConfirmed,
	entity.StatusMeasuring,
	entity.StatusStitching,
	entity.StatusReady,
	entity.StatusDelivered,
}

var statusIndex = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int, len(statusOrder))
	for i, s := range statusOrder {
		idx[s] = i
	}
	return idx
}

// Statuses devuelve la secuencia ordenada de estados (copia).
func Statuses() []string {
	out := make([]string, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// IsValidStatus reporta si s es un estado conocido.
func IsValidStatus(s string) bool {
	_, ok := statusIndex[s]
	return ok
}

// IsTerminal reporta si s es el estado terminal (delivered no tiene salidas).
func IsTerminal(s string) bool {
	idx, ok := statusIndex[s]
	return ok && idx == len(statusOrder)-1
}

// CanTransition reporta si from → to es un avance legal: ambos estados
// conocidos y to estrictamente posterior a from.
func CanTransition(from, to string) bool {
	fromIdx, okFrom := statusIndex[from]
	toIdx, okTo := statusIndex[to]
	return okFrom && okTo && toIdx > fromIdx
}

// RequestTransition valida y aplica un cambio de estado sobre una copia del
// pedido. La autorización se comprueba antes que la validez del destino:
// un actor que no sea admin recibe ErrForbidden sea cual sea el target.
// En éxito devuelve el pedido con Status y UpdatedAt actualizados de forma
// atómica para el caller; el pedido original no se muta.
func RequestTransition(order *entity.Order, target string, actor access.Role, now time.Time) (*entity.Order, error) {
	if actor != access.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !CanTransition(order.Status, target) {
		return nil, domain.ErrIllegalTransition
	}
	updated := *order
	updated.Status = target
	updated.UpdatedAt = now
	return &updated, nil
}
