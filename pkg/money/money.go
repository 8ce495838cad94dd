// Package money concentra la presentación de importes en euros.
// El cálculo se hace siempre con decimal.Decimal (aritmética decimal exacta);
// aquí solo se formatea para mostrar, con la localización fr-FR que espera
// el público del producto.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var frPrinter = message.NewPrinter(language.French)

// FormatEuro formatea un importe con 2 decimales y separadores fr-FR:
// coma decimal y espacio de millares, con el símbolo € al final.
func FormatEuro(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return frPrinter.Sprintf("%v €", number.Decimal(f,
		number.Scale(2),
	))
}

// Round2 redondea al céntimo (half-up), la precisión de unidad menor del euro.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
