package invoicing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// ValidateInvoice valida los campos de una factura antes de cualquier
// mutación: formato del número, cliente obligatorio, fechas presentes y
// coherentes (due_date ≥ issue_date) y líneas sin cantidades ni precios
// negativos. Devuelve un mapa de errores por campo; vacío si todo es válido.
// La operación que la invoca debe abortar sin efectos si hay errores.
func ValidateInvoice(inv *entity.Invoice) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if inv == nil {
		errs["invoice"] = "factura requerida"
		return errs
	}
	if !IsValidNumber(inv.Number) {
		errs["invoice_number"] = "formato de número inválido (AA-MM-SSS)"
	}
	if inv.ClientID == "" {
		errs["client"] = "cliente requerido"
	}
	if inv.IssueDate == nil || inv.DueDate == nil {
		errs["date"] = "fecha de emisión y de vencimiento requeridas"
	} else if inv.DueDate.Before(*inv.IssueDate) {
		errs["date"] = "la fecha de vencimiento no puede ser anterior a la de emisión"
	}
	for _, item := range inv.Items {
		if item.Quantity.LessThan(decimal.Zero) {
			errs["items"] = "la cantidad no puede ser negativa"
			break
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			errs["items"] = "el precio unitario no puede ser negativo"
			break
		}
	}
	return errs
}
