package invoicing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// ItemTotal calcula el total de una línea: cantidad × precio unitario,
// redondeado al céntimo. La aritmética es decimal exacta; nunca float binario.
func ItemTotal(item entity.InvoiceItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice).Round(2)
}

// Subtotal suma los totales de línea de la factura. Es la única fuente del
// subtotal mostrado: no existe un importe almacenado que pueda divergir de
// las líneas. Una factura sin líneas suma 0, no es un error.
// El resultado es invariante al orden de las líneas.
func Subtotal(items []entity.InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(ItemTotal(item))
	}
	return sum
}
