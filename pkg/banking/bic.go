package banking

import (
	"regexp"
	"strings"
)

// bicFRPattern: BIC francés de 8 u 11 caracteres:
// 4 letras (banco) + FR (país) + 2 caracteres de localización + 3 opcionales (agencia).
// El primer carácter de localización no puede ser 0 ni 1 (ISO 9362).
var bicFRPattern = regexp.MustCompile(`^[A-Z]{4}FR[A-Z2-9][A-Z0-9]([A-Z0-9]{3})?$`)

// IsValidBIC verifica un BIC/SWIFT francés contra el patrón ISO 9362.
// No hay checksum en el BIC; la validación es puramente estructural.
func IsValidBIC(bic string) bool {
	cleaned := strings.ToUpper(strings.Join(strings.Fields(bic), ""))
	return bicFRPattern.MatchString(cleaned)
}
