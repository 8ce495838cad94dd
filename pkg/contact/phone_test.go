package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/facturio/pkg/contact"
)

func TestParsePhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"internacional con espacios", "+33 6 12 34 56 78", "612345678"},
		{"nacional con 0 inicial", "0612345678", "612345678"},
		{"ya canónico", "612345678", "612345678"},
		{"con puntos", "06.12.34.56.78", "612345678"},
		{"33 sin signo más", "33612345678", "612345678"},
		{"trunca el exceso", "061234567890", "612345678"},
		{"vacío", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contact.ParsePhone(tc.input))
		})
	}
}

func TestFormatPhone_ParesDesdeLaDerecha(t *testing.T) {
	assert.Equal(t, "6 12 34 56 78", contact.FormatPhone("612345678"))
	assert.Equal(t, "06 12 34 56 78", contact.FormatPhone("0612345678"))
	assert.Equal(t, "", contact.FormatPhone(""))
}

// TestParsePhone_RoundTripEstable: parse(format(parse(x))) == parse(x);
// formatear y volver a parsear nunca altera la forma canónica.
func TestParsePhone_RoundTripEstable(t *testing.T) {
	inputs := []string{"+33 6 12 34 56 78", "0612345678", "612345678", "06-12-34-56-78"}
	for _, in := range inputs {
		canonical := contact.ParsePhone(in)
		assert.Equal(t, canonical, contact.ParsePhone(contact.FormatPhone(canonical)), "entrada %q", in)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, contact.IsValidPhone("612345678"))
	assert.False(t, contact.IsValidPhone("61234567"), "8 dígitos no es válido")
	assert.False(t, contact.IsValidPhone("0612345678"), "10 dígitos no es la forma canónica")
	assert.False(t, contact.IsValidPhone("61234567a"))
	assert.False(t, contact.IsValidPhone(""))
}
