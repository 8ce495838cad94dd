package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/facturio/internal/application/dto"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/invoicing"
	"github.com/tu-usuario/facturio/internal/domain/repository"
)

// maxNumberRetries reintentos de numeración automática cuando el candidato
// choca con el índice único (otra factura se numeró en paralelo).
const maxNumberRetries = 3

// InvoiceUseCase casos de uso de facturación: creación con numeración mensual,
// consulta, edición, cambio de estado y borrado.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	now         func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		now:         time.Now,
	}
}

// CreateInvoice crea la factura en estado draft.
//
// Sin número explícito se numera automáticamente: recuento de facturas del
// propietario en el mes en curso + 1, formato AA-MM-SSS. El recuento y la
// inserción comparten transacción; si aun así el índice único rechaza el
// número (carrera con otra creación) se recuenta y reintenta hasta
// maxNumberRetries veces antes de rendirse con ErrSequenceConflict.
//
// Con número explícito no hay reintento: un duplicado es un error del usuario
// y se devuelve ErrDuplicate tal cual.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, ownerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, ownerID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	issue, due, err := uc.resolveDates(in.IssueDate, in.DueDate, now)
	if err != nil {
		return nil, err
	}

	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		ClientID:  in.ClientID,
		Number:    in.Number,
		Status:    entity.StatusDraft,
		IssueDate: issue,
		DueDate:   due,
		Items:     buildItems(in.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}

	errs := invoicing.ValidateInvoice(inv)
	if in.Number == "" {
		// El número automático aún no existe; se genera dentro de la tx y es
		// válido por construcción.
		delete(errs, "invoice_number")
	}
	if errs.HasErrors() {
		return nil, errs
	}

	if in.Number != "" {
		if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
			if errors.Is(err, domain.ErrSequenceConflict) {
				return nil, domain.ErrDuplicate
			}
			return nil, err
		}
		return uc.toResponse(inv, client.CompanyName), nil
	}

	for attempt := 1; attempt <= maxNumberRetries; attempt++ {
		err = uc.txRunner.RunBilling(ctx, func(
			invoiceRepo repository.InvoiceRepository,
			_ repository.ClientRepository,
		) error {
			start, end := invoicing.MonthBounds(now)
			count, err := invoiceRepo.CountByOwnerBetween(ctx, ownerID, start, end)
			if err != nil {
				return err
			}
			inv.Number = invoicing.GenerateNumber(count, now)
			return invoiceRepo.Create(ctx, inv)
		})
		if err == nil {
			return uc.toResponse(inv, client.CompanyName), nil
		}
		if !errors.Is(err, domain.ErrSequenceConflict) {
			return nil, err
		}
		log.Warn().
			Str("owner_id", ownerID).
			Str("candidate", inv.Number).
			Int("attempt", attempt).
			Msg("número de factura en conflicto, reintentando")
	}
	return nil, domain.ErrSequenceConflict
}

// resolveDates aplica los valores por defecto: emisión hoy, vencimiento un mes
// de calendario después de la emisión.
func (uc *InvoiceUseCase) resolveDates(issueStr, dueStr string, now time.Time) (issue, due *time.Time, err error) {
	issueDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if issueStr != "" {
		issueDay, err = time.Parse(dto.DateLayout, issueStr)
		if err != nil {
			return nil, nil, domain.FieldErrors{"date": "fecha de emisión inválida (YYYY-MM-DD)"}
		}
	}
	dueDay := issueDay.AddDate(0, 1, 0)
	if dueStr != "" {
		dueDay, err = time.Parse(dto.DateLayout, dueStr)
		if err != nil {
			return nil, nil, domain.FieldErrors{"date": "fecha de vencimiento inválida (YYYY-MM-DD)"}
		}
	}
	return &issueDay, &dueDay, nil
}

func buildItems(in []dto.InvoiceItemRequest) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.InvoiceItem{
			ID:          uuid.New().String(),
			Title:       it.Title,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}
