package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
//
// Las escrituras de factura + líneas son transaccionales: la implementación
// garantiza que nunca queda una factura sin líneas a medio insertar.
type InvoiceRepository interface {
	// Create inserta la factura con sus líneas. Si invoice_number choca con el
	// índice único devuelve domain.ErrSequenceConflict para que el caso de uso
	// recuente y reintente.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// GetByID devuelve la factura con Items resueltos, o (nil, nil) si no
	// existe o no pertenece a ownerID.
	GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error)

	// ListByOwner devuelve las facturas del propietario con sus líneas,
	// ordenadas por fecha de emisión descendente (las sin fecha al final).
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Invoice, error)

	// CountByOwnerBetween cuenta las facturas del propietario con issue_date
	// dentro de [start, end] (incluido). Alimenta la numeración mensual.
	CountByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) (int, error)

	// Update actualiza la cabecera y reemplaza las líneas en bloque dentro de
	// la misma transacción.
	Update(ctx context.Context, invoice *entity.Invoice) error

	// UpdateStatus cambia solo el estado. La validación de la transición es
	// responsabilidad del caso de uso, no del repositorio.
	UpdateStatus(ctx context.Context, ownerID, id, status string) error

	Delete(ctx context.Context, ownerID, id string) error
}
