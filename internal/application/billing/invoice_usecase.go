package billing

import (
	"context"
	"time"

	"github.com/tu-usuario/facturio/internal/application/dto"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/invoicing"
	"github.com/tu-usuario/facturio/pkg/money"
)

// GetInvoice obtiene una factura del propietario con líneas y subtotal.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, ownerID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	clientName := ""
	if client, err := uc.clientRepo.GetByID(ctx, ownerID, inv.ClientID); err == nil && client != nil {
		clientName = client.CompanyName
	}
	return uc.toResponse(inv, clientName), nil
}

// ListInvoices lista las facturas del propietario, más recientes primero.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, ownerID string) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(clients))
	for _, c := range clients {
		nameByID[c.ID] = c.CompanyName
	}

	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *uc.toResponse(inv, nameByID[inv.ClientID]))
	}
	return out, nil
}

// UpdateInvoice edita una factura no terminal: cabecera y reemplazo en bloque
// de las líneas. Las fechas vacías conservan el valor actual.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, ownerID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if invoicing.IsTerminal(inv.Status) {
		return nil, domain.ErrConflict
	}

	client, err := uc.clientRepo.GetByID(ctx, ownerID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	if in.IssueDate != "" {
		issue, err := time.Parse(dto.DateLayout, in.IssueDate)
		if err != nil {
			return nil, domain.FieldErrors{"date": "fecha de emisión inválida (YYYY-MM-DD)"}
		}
		inv.IssueDate = &issue
	}
	if in.DueDate != "" {
		due, err := time.Parse(dto.DateLayout, in.DueDate)
		if err != nil {
			return nil, domain.FieldErrors{"date": "fecha de vencimiento inválida (YYYY-MM-DD)"}
		}
		inv.DueDate = &due
	}
	inv.ClientID = in.ClientID
	inv.Items = buildItems(in.Items)
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}
	inv.UpdatedAt = uc.now()

	if errs := invoicing.ValidateInvoice(inv); errs.HasErrors() {
		return nil, errs
	}
	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv, client.CompanyName), nil
}

// ChangeStatus aplica la máquina de estados: draft→sent, sent→paid|overdue,
// overdue→paid. Cualquier otro cambio devuelve ErrInvalidTransition sin
// efecto alguno.
func (uc *InvoiceUseCase) ChangeStatus(ctx context.Context, ownerID, id, requested string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	next, err := invoicing.Transition(inv.Status, requested)
	if err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.UpdateStatus(ctx, ownerID, id, next); err != nil {
		return nil, err
	}
	inv.Status = next
	clientName := ""
	if client, err := uc.clientRepo.GetByID(ctx, ownerID, inv.ClientID); err == nil && client != nil {
		clientName = client.CompanyName
	}
	return uc.toResponse(inv, clientName), nil
}

// DeleteInvoice borra una factura no cobrada. Una factura paid es un
// documento contable y no se borra.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, ownerID, id string) error {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if invoicing.IsTerminal(inv.Status) {
		return domain.ErrConflict
	}
	return uc.invoiceRepo.Delete(ctx, ownerID, id)
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, clientName string) *dto.InvoiceResponse {
	subtotal := invoicing.Subtotal(inv.Items)
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		ClientName:    clientName,
		Number:        inv.Number,
		Status:        inv.Status,
		Items:         make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		Subtotal:      subtotal,
		SubtotalLabel: money.FormatEuro(subtotal),
	}
	if inv.IssueDate != nil {
		resp.IssueDate = inv.IssueDate.Format(dto.DateLayout)
	}
	if inv.DueDate != nil {
		resp.DueDate = inv.DueDate.Format(dto.DateLayout)
	}
	for _, item := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       invoicing.ItemTotal(item),
		})
	}
	return resp
}
