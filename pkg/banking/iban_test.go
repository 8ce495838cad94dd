package banking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturio/pkg/banking"
)

// ──────────────────────────────────────────────────────────────────────────────
// IBAN francés de referencia (clave de control 76 válida según ISO 7064 mod-97).
// ──────────────────────────────────────────────────────────────────────────────

const (
	testIBANValid     = "FR7630006000011234567890189"
	testIBANFormatted = "FR76 3000 6000 0112 3456 7890 189"
)

func TestIsValidIBAN_VectorReferencia(t *testing.T) {
	assert.True(t, banking.IsValidIBAN(testIBANValid),
		"el IBAN de referencia debe ser válido")
	assert.True(t, banking.IsValidIBAN(testIBANFormatted),
		"los espacios de agrupación no deben afectar la validación")
	assert.True(t, banking.IsValidIBAN("fr7630006000011234567890189"),
		"la validación debe ser insensible a mayúsculas/minúsculas")
}

// TestIsValidIBAN_CambioDeUnDigito verifica que mod-97 detecta cualquier error
// de transcripción de un solo dígito: al cambiar un dígito el resto cambia en
// d·10^k mod 97 ≠ 0, así que el IBAN resultante nunca valida.
func TestIsValidIBAN_CambioDeUnDigito(t *testing.T) {
	for pos := 2; pos < len(testIBANValid); pos++ {
		original := testIBANValid[pos]
		flipped := byte('0' + (original-'0'+1)%10)
		mutated := testIBANValid[:pos] + string(flipped) + testIBANValid[pos+1:]
		assert.False(t, banking.IsValidIBAN(mutated),
			"cambiar el dígito en la posición %d debe invalidar el IBAN", pos)
	}
}

func TestIsValidIBAN_PatronIncorrecto(t *testing.T) {
	cases := []struct {
		name string
		iban string
	}{
		{"vacío", ""},
		{"país distinto", "DE7630006000011234567890189"},
		{"muy corto", "FR76300060000112345678901"},
		{"muy largo", "FR763000600001123456789018900"},
		{"letras en el BBAN", "FR76A0006000011234567890189"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, banking.IsValidIBAN(tc.iban))
		})
	}
}

// ── Formateo y parseo ─────────────────────────────────────────────────────────

func TestFormatIBAN_AgrupaDeCuatroEnCuatro(t *testing.T) {
	assert.Equal(t, testIBANFormatted, banking.FormatIBAN(testIBANValid))
}

func TestFormatIBAN_IdempotenteSobreLosDigitos(t *testing.T) {
	once := banking.FormatIBAN(testIBANValid)
	twice := banking.FormatIBAN(once)
	assert.Equal(t, once, twice, "formatear un IBAN ya formateado no debe cambiarlo")
}

// TestParseFormatIBAN_RoundTrip: parse(format(x)) recupera exactamente la forma
// canónica; el formateo de presentación no pierde información.
func TestParseFormatIBAN_RoundTrip(t *testing.T) {
	canonical := banking.ParseIBAN(testIBANFormatted)
	require.Equal(t, testIBANValid, canonical)
	assert.Equal(t, canonical, banking.ParseIBAN(banking.FormatIBAN(canonical)))
}

func TestFormatIBAN_TruncaA25Digitos(t *testing.T) {
	long := testIBANValid + "99999"
	formatted := banking.FormatIBAN(long)
	assert.Equal(t, testIBANValid, banking.ParseIBAN(formatted),
		"los dígitos sobrantes se descartan al formatear")
}
