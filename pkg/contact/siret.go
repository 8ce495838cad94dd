package contact

// siretDigits longitud canónica del SIRET: 9 dígitos SIREN + 5 del establecimiento (NIC).
const siretDigits = 14

// ParseSIRET normaliza una entrada libre a la forma canónica: solo dígitos,
// truncados a 14.
func ParseSIRET(input string) string {
	digits := onlyDigits(input)
	if len(digits) > siretDigits {
		digits = digits[:siretDigits]
	}
	return digits
}

// FormatSIRET formatea para mostrar agrupando 3-3-3-5: "73282932000074" →
// "732 829 320 00074". Entradas parciales se agrupan hasta donde alcancen.
func FormatSIRET(siret string) string {
	digits := ParseSIRET(siret)
	groups := []int{3, 3, 3, 5}
	out := ""
	pos := 0
	for _, g := range groups {
		if pos >= len(digits) {
			break
		}
		end := pos + g
		if end > len(digits) {
			end = len(digits)
		}
		if out != "" {
			out += " "
		}
		out += digits[pos:end]
		pos = end
	}
	return out
}

// IsValidSIRET exige exactamente 14 dígitos.
// Solo se valida la longitud: el dígito de control Luhn del SIRET no se
// verifica aquí (ver decisión en DESIGN.md antes de endurecer esta regla).
func IsValidSIRET(siret string) bool {
	if len(siret) != siretDigits {
		return false
	}
	return onlyDigits(siret) == siret
}
