package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de prestación en una petición de factura.
type InvoiceItemRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest entrada para crear una factura.
//
// Number es opcional: vacío significa "numerar automáticamente" (AA-MM-SSS
// según el recuento del mes). DueDate vacío se resuelve a IssueDate + 1 mes.
// Las fechas usan DateLayout (YYYY-MM-DD).
type CreateInvoiceRequest struct {
	ClientID  string               `json:"client_id" validate:"required"`
	Number    string               `json:"invoice_number" validate:"omitempty"`
	IssueDate string               `json:"issue_date" validate:"omitempty"`
	DueDate   string               `json:"due_date" validate:"omitempty"`
	Items     []InvoiceItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateInvoiceRequest entrada para editar una factura no terminal.
// Items reemplaza en bloque las líneas existentes.
type UpdateInvoiceRequest struct {
	ClientID  string               `json:"client_id" validate:"required"`
	IssueDate string               `json:"issue_date" validate:"omitempty"`
	DueDate   string               `json:"due_date" validate:"omitempty"`
	Items     []InvoiceItemRequest `json:"items" validate:"required,min=1"`
}

// ChangeStatusRequest entrada para el cambio de estado.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid overdue"`
}

// InvoiceItemResponse línea con su total calculado (qty × precio, al céntimo).
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse salida de una factura con líneas y subtotal recalculado.
type InvoiceResponse struct {
	ID         string                `json:"id"`
	ClientID   string                `json:"client_id"`
	ClientName string                `json:"client_name,omitempty"`
	Number     string                `json:"invoice_number"`
	Status     string                `json:"status"`
	IssueDate  string                `json:"issue_date,omitempty"` // YYYY-MM-DD
	DueDate    string                `json:"due_date,omitempty"`
	Items      []InvoiceItemResponse `json:"items"`
	Subtotal   decimal.Decimal       `json:"subtotal"`
	// SubtotalLabel subtotal formateado en euros para mostrar tal cual
	// (ej: "1 234,56 €").
	SubtotalLabel string `json:"subtotal_label"`
}
