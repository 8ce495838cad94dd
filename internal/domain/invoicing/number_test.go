package invoicing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturio/internal/domain/invoicing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Numeración mensual AA-MM-SSS
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateNumber_Formato(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	got := invoicing.GenerateNumber(0, now)
	assert.Equal(t, "26-03-001", got, "primera factura del mes")
	assert.Regexp(t, `^\d{2}-\d{2}-\d{3}$`, got)

	assert.Equal(t, "26-03-008", invoicing.GenerateNumber(7, now))
	assert.Equal(t, "26-12-100", invoicing.GenerateNumber(99, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

// TestGenerateNumber_SecuenciaCreciente: dentro de un (año, mes) fijo la
// secuencia es estrictamente creciente con el recuento de facturas existentes.
func TestGenerateNumber_SecuenciaCreciente(t *testing.T) {
	now := time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)
	prev := ""
	for n := 0; n < 150; n++ {
		got := invoicing.GenerateNumber(n, now)
		require.Regexp(t, `^\d{2}-\d{2}-\d{3}$`, got, "n=%d", n)
		assert.Greater(t, got, prev, "la secuencia debe crecer con n")
		prev = got
	}
}

func TestGenerateNumber_CeroALaIzquierda(t *testing.T) {
	// Enero de 2030: tanto el mes como la secuencia llevan ceros de relleno.
	now := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "30-01-001", invoicing.GenerateNumber(0, now))
}

func TestIsValidNumber(t *testing.T) {
	assert.True(t, invoicing.IsValidNumber("26-03-001"))
	assert.False(t, invoicing.IsValidNumber("26-3-001"))
	assert.False(t, invoicing.IsValidNumber("2026-03-001"))
	assert.False(t, invoicing.IsValidNumber("26-03-01"))
	assert.False(t, invoicing.IsValidNumber(""))
	assert.False(t, invoicing.IsValidNumber("26-03-001 "))
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		name      string
		in        time.Time
		wantStart string
		wantEnd   string
	}{
		{"mes de 31 días", time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC), "2026-03-01", "2026-03-31"},
		{"febrero bisiesto", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{"febrero no bisiesto", time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), "2026-02-01", "2026-02-28"},
		{"diciembre", time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC), "2025-12-01", "2025-12-31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := invoicing.MonthBounds(tc.in)
			assert.Equal(t, tc.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tc.wantEnd, end.Format("2006-01-02"))
		})
	}
}
