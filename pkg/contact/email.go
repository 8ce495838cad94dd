package contact

import "regexp"

// emailPattern comprobación sintáctica mínima: algo@algo.tld sin espacios.
// No se verifica la entregabilidad del buzón.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail valida únicamente el formato del email.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
