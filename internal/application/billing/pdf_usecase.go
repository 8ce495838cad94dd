package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	profileRepo repository.ProfileRepository
	generator   PDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	profileRepo repository.ProfileRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		profileRepo: profileRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF recupera factura, cliente, perfil del emisor y
// coordenadas bancarias, y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe o no es del usuario.
//   - domain.ErrInvalidInput     si el emisor aún no completó su perfil.
func (uc *PDFUseCase) DownloadInvoicePDF(
	ctx context.Context,
	ownerID, invoiceID string,
) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	client, err := uc.clientRepo.GetByID(ctx, ownerID, inv.ClientID)
	if err != nil || client == nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", domain.ErrNotFound)
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener perfil: %w", err)
	}
	if profile == nil {
		return nil, "", fmt.Errorf("%w: complete su perfil antes de generar facturas en PDF",
			domain.ErrInvalidInput)
	}

	// Sin coordenadas bancarias el PDF se genera igualmente, sin el pie de pago.
	bank, err := uc.profileRepo.GetBankDetails(ctx, ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener coordenadas bancarias: %w", err)
	}

	pdfBytes, err = uc.generator.Generate(PDFData{
		Invoice: inv,
		Client:  client,
		Profile: profile,
		Bank:    bank,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("facture_%s.pdf", strings.ReplaceAll(inv.Number, "-", "_"))
	return pdfBytes, filename, nil
}
