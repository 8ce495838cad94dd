package invoicing

import (
	"fmt"

	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// transitions tabla de transiciones legales de la máquina de estados.
// paid es terminal; overdue solo puede resolverse cobrando.
var transitions = map[string][]string{
	entity.StatusDraft:   {entity.StatusSent},
	entity.StatusSent:    {entity.StatusPaid, entity.StatusOverdue},
	entity.StatusOverdue: {entity.StatusPaid},
	entity.StatusPaid:    {},
}

// Transition valida el cambio de estado solicitado y devuelve el estado nuevo.
// Cualquier cambio de estado de factura debe pasar por aquí; la UI nunca
// escribe el estado directamente.
// Retorna domain.ErrInvalidTransition si el cambio no está permitido, sin
// efecto parcial alguno.
func Transition(current, requested string) (string, error) {
	allowed, ok := transitions[current]
	if !ok {
		return "", fmt.Errorf("%w: estado actual desconocido %q", domain.ErrInvalidTransition, current)
	}
	if _, known := transitions[requested]; !known {
		return "", fmt.Errorf("%w: estado solicitado desconocido %q", domain.ErrInvalidTransition, requested)
	}
	for _, s := range allowed {
		if s == requested {
			return requested, nil
		}
	}
	return "", fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, current, requested)
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(status string) bool {
	allowed, ok := transitions[status]
	return ok && len(allowed) == 0
}
