package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una factura.
const (
	StatusDraft   = "draft"   // Creada, aún no enviada al cliente
	StatusSent    = "sent"    // Enviada, pendiente de cobro
	StatusPaid    = "paid"    // Cobrada (estado terminal)
	StatusOverdue = "overdue" // Vencida sin cobrar
)

// Invoice representa una factura de un auto-entrepreneur.
//
// Number sigue el formato AA-MM-SSS (año corto, mes, secuencia mensual) y es
// único globalmente: la base impone un índice único sobre invoice_number.
// El subtotal nunca se almacena; se recalcula siempre desde Items.
type Invoice struct {
	ID        string
	OwnerID   string // usuario propietario (emisor)
	ClientID  string
	Number    string
	Status    string
	IssueDate *time.Time // puede ser nulo en borradores
	DueDate   *time.Time
	Items     []InvoiceItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceItem línea de prestación de una factura.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Title       string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal // unidades mayores (euros), precisión de céntimo
}
