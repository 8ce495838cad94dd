package billing

import (
	"context"

	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de facturación. El recuento mensual y la inserción de la factura
// comparten transacción; el índice único sobre invoice_number cubre la carrera
// entre transacciones concurrentes.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		clientRepo repository.ClientRepository,
	) error) error
}

// PDFData todo lo que el generador necesita para renderizar una factura:
// la factura con líneas, el cliente y los datos del emisor.
type PDFData struct {
	Invoice *entity.Invoice
	Client  *entity.Client
	Profile *entity.Profile
	Bank    *entity.BankDetails // puede ser nil si el emisor no guardó IBAN
}

// PDFGenerator renderiza el PDF de una factura. La implementación vive en
// infrastructure (maroto).
type PDFGenerator interface {
	Generate(data PDFData) ([]byte, error)
}
