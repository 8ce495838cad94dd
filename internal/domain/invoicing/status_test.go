package invoicing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/invoicing"
)

func TestTransition_CambiosPermitidos(t *testing.T) {
	cases := []struct{ from, to string }{
		{entity.StatusDraft, entity.StatusSent},
		{entity.StatusSent, entity.StatusPaid},
		{entity.StatusSent, entity.StatusOverdue},
		{entity.StatusOverdue, entity.StatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.from+"→"+tc.to, func(t *testing.T) {
			got, err := invoicing.Transition(tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}
}

func TestTransition_CambiosRechazados(t *testing.T) {
	cases := []struct{ from, to string }{
		{entity.StatusDraft, entity.StatusPaid},    // no se puede cobrar sin enviar
		{entity.StatusDraft, entity.StatusOverdue}, // un borrador no vence
		{entity.StatusPaid, entity.StatusSent},     // paid es terminal
		{entity.StatusPaid, entity.StatusDraft},
		{entity.StatusOverdue, entity.StatusSent},
		{entity.StatusSent, entity.StatusDraft}, // no hay vuelta atrás a borrador
	}
	for _, tc := range cases {
		t.Run(tc.from+"→"+tc.to, func(t *testing.T) {
			_, err := invoicing.Transition(tc.from, tc.to)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestTransition_EstadosDesconocidos(t *testing.T) {
	_, err := invoicing.Transition("archived", entity.StatusSent)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = invoicing.Transition(entity.StatusDraft, "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, invoicing.IsTerminal(entity.StatusPaid))
	assert.False(t, invoicing.IsTerminal(entity.StatusDraft))
	assert.False(t, invoicing.IsTerminal(entity.StatusSent))
	assert.False(t, invoicing.IsTerminal(entity.StatusOverdue))
	assert.False(t, invoicing.IsTerminal("desconocido"))
}
