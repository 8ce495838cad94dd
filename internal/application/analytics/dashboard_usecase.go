package analytics

import (
	"context"
	"time"

	"github.com/tu-usuario/facturio/internal/application/dto"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/invoicing"
	"github.com/tu-usuario/facturio/internal/domain/repository"
	"github.com/tu-usuario/facturio/pkg/money"
)

// DashboardUseCase agrega los KPIs financieros del emisor.
type DashboardUseCase struct {
	invoiceRepo repository.InvoiceRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(
	invoiceRepo repository.InvoiceRepository,
	profileRepo repository.ProfileRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoiceRepo: invoiceRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// GetSummary recalcula los KPIs desde el conjunto completo de facturas del
// usuario, con la cadencia de declaración vigente en su perfil (mensual por
// defecto si aún no completó el onboarding).
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	mode := entity.DeclarationMonthly
	if p, err := uc.profileRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	} else if p != nil && p.DeclarationMode != "" {
		mode = p.DeclarationMode
	}

	invoices, err := uc.invoiceRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	k := invoicing.ComputeKPIs(invoices, now, mode)

	return &dto.DashboardSummaryDTO{
		TotalRevenue:       k.TotalRevenue,
		PendingAmount:      k.PendingAmount,
		PendingCount:       k.PendingCount,
		ToDeclare:          k.ToDeclare,
		TotalRevenueLabel:  money.FormatEuro(k.TotalRevenue),
		PendingAmountLabel: money.FormatEuro(k.PendingAmount),
		ToDeclareLabel:     money.FormatEuro(k.ToDeclare),
		DeclarationMode:    mode,
		PeriodStart:        invoicing.PeriodStart(now, mode).Format(dto.DateLayout),
	}, nil
}
