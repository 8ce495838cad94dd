// Package banking valida y formatea identificadores bancarios franceses:
// IBAN (ISO 13616, checksum ISO 7064 mod-97) y BIC (ISO 9362).
// Todas las funciones son puras, sin efectos secundarios.
package banking

import (
	"regexp"
	"strings"
)

// ibanFRPattern: IBAN francés = FR + 2 dígitos de control + 23 dígitos BBAN
// (5 banco + 5 guichet + 11 cuenta + 2 clave RIB). 27 caracteres en total.
var ibanFRPattern = regexp.MustCompile(`^FR\d{25}$`)

// IsValidIBAN verifica un IBAN francés: limpia espacios, exige el patrón FR+25
// dígitos y comprueba la clave de control con el algoritmo mod-97 (ISO 7064).
func IsValidIBAN(iban string) bool {
	cleaned := ParseIBAN(iban)
	if !ibanFRPattern.MatchString(cleaned) {
		return false
	}
	return mod97(rearranged(cleaned)) == 1
}

// rearranged mueve los 4 primeros caracteres al final y convierte cada letra
// a su valor numérico (A=10 … Z=35), produciendo la cadena decimal del ISO 7064.
func rearranged(iban string) string {
	reordered := iban[4:] + iban[:4]
	var b strings.Builder
	for i := 0; i < len(reordered); i++ {
		c := reordered[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteString(itoa2(int(c) - 55))
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// mod97 reduce la cadena decimal módulo 97 dígito a dígito (acumular resto,
// añadir el siguiente dígito, volver a reducir). Así se evita el overflow de
// tratar los 30+ dígitos como un solo entero.
func mod97(digits string) int {
	rem := 0
	for i := 0; i < len(digits); i++ {
		rem = (rem*10 + int(digits[i]-'0')) % 97
	}
	return rem
}

// itoa2 convierte un valor 10..35 a sus dos dígitos decimales.
func itoa2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

// ParseIBAN normaliza un IBAN para almacenar: sin espacios y en mayúsculas.
func ParseIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// FormatIBAN formatea un IBAN francés para mostrar: fuerza el prefijo FR,
// conserva solo dígitos (máximo 25) y agrupa de 4 en 4.
// FormatIBAN(ParseIBAN(x)) no pierde información sobre la secuencia de dígitos:
// ParseIBAN(FormatIBAN(s)) == s para todo s canónico.
func FormatIBAN(iban string) string {
	cleaned := strings.Join(strings.Fields(iban), "")
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "FR"), "fr")
	var digits strings.Builder
	for i := 0; i < len(cleaned) && digits.Len() < 25; i++ {
		if cleaned[i] >= '0' && cleaned[i] <= '9' {
			digits.WriteByte(cleaned[i])
		}
	}
	withFR := "FR" + digits.String()
	var b strings.Builder
	for i := 0; i < len(withFR); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(withFR) {
			end = len(withFR)
		}
		b.WriteString(withFR[i:end])
	}
	return b.String()
}
