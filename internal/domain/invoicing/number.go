// Package invoicing contiene el núcleo algorítmico de facturación: numeración
// mensual, máquina de estados, totales de líneas y agregación de KPIs.
// Todas las funciones son puras: operan sobre datos ya cargados y no hacen I/O,
// de modo que se prueban de forma determinista sin mocks.
package invoicing

import (
	"fmt"
	"regexp"
	"time"
)

// NumberPattern formato del número de factura: AA-MM-SSS.
var NumberPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{3}$`)

// GenerateNumber produce el número candidato para la siguiente factura del mes:
// año en 2 dígitos, mes con cero a la izquierda y secuencia = n+1 sobre 3
// dígitos, donde n es el número de facturas del propietario con issue_date
// dentro del mes en curso.
//
// El candidato es solo orientativo: la unicidad real la impone el índice único
// de la base. Ante un duplicado el caller recuenta y reintenta.
func GenerateNumber(existingCountThisMonth int, now time.Time) string {
	return fmt.Sprintf("%02d-%02d-%03d",
		now.Year()%100,
		int(now.Month()),
		existingCountThisMonth+1,
	)
}

// IsValidNumber verifica el formato AA-MM-SSS.
func IsValidNumber(number string) bool {
	return NumberPattern.MatchString(number)
}

// MonthBounds devuelve el primer y el último día del mes de t (horas a cero),
// el rango usado para contar las facturas del mes al numerar.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	// Día 0 del mes siguiente = último día del mes en curso; correcto también
	// en febrero bisiesto y meses de 30/31 días.
	end = time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	return start, end
}
