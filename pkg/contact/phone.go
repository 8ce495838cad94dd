// Package contact normaliza y valida datos de contacto: teléfono francés,
// SIRET y email. Consolida en un solo lugar la validación que antes estaba
// dispersa en los formularios de alta y edición.
package contact

import "strings"

// phoneDigits longitud canónica del teléfono: número nacional significativo,
// sin el 0 inicial ni el prefijo de país 33.
const phoneDigits = 9

// ParsePhone normaliza una entrada libre a la forma canónica de 9 dígitos:
// descarta todo lo que no sea dígito, quita un prefijo 33 y un 0 inicial,
// y trunca a 9 dígitos. "+33 6 12 34 56 78" → "612345678".
func ParsePhone(input string) string {
	digits := onlyDigits(input)
	digits = strings.TrimPrefix(digits, "33")
	digits = strings.TrimPrefix(digits, "0")
	if len(digits) > phoneDigits {
		digits = digits[:phoneDigits]
	}
	return digits
}

// FormatPhone agrupa los dígitos en pares desde la derecha, separados por
// espacio: "612345678" → "6 12 34 56 78".
func FormatPhone(digits string) string {
	n := len(digits)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	head := n % 2
	if head == 0 {
		head = 2
	}
	b.WriteString(digits[:head])
	for i := head; i < n; i += 2 {
		b.WriteByte(' ')
		b.WriteString(digits[i : i+2])
	}
	return b.String()
}

// IsValidPhone exige exactamente 9 dígitos en la forma canónica.
func IsValidPhone(digits string) bool {
	if len(digits) != phoneDigits {
		return false
	}
	return onlyDigits(digits) == digits
}

// onlyDigits deja solo dígitos 0-9.
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
