package invoicing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/invoicing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: facturas sintéticas con una sola línea por el total indicado.
// ──────────────────────────────────────────────────────────────────────────────

func invoiceWith(status string, total float64, issued *time.Time) *entity.Invoice {
	return &entity.Invoice{
		Status:    status,
		IssueDate: issued,
		Items: []entity.InvoiceItem{{
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromFloat(total),
		}},
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: una paid del mes en curso y una sent del mes
// anterior, en modo mensual.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeKPIs_EscenarioMensual(t *testing.T) {
	now := time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)
	invoices := []*entity.Invoice{
		invoiceWith(entity.StatusPaid, 100, datePtr(2026, time.May, 1)),
		invoiceWith(entity.StatusSent, 50, datePtr(2026, time.April, 28)),
	}

	k := invoicing.ComputeKPIs(invoices, now, entity.DeclarationMonthly)

	assert.True(t, decimal.NewFromInt(100).Equal(k.TotalRevenue), "TotalRevenue: %s", k.TotalRevenue)
	assert.True(t, decimal.NewFromInt(50).Equal(k.PendingAmount), "PendingAmount: %s", k.PendingAmount)
	assert.Equal(t, 1, k.PendingCount)
	// La sent de abril queda fuera del periodo mensual de mayo.
	assert.True(t, decimal.NewFromInt(100).Equal(k.ToDeclare), "ToDeclare: %s", k.ToDeclare)
}

// TestComputeKPIs_FronteraDeTrimestre: el 1 de abril entra en el Q2; el 31 de
// marzo no.
func TestComputeKPIs_FronteraDeTrimestre(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC) // Q2: abril-junio
	invoices := []*entity.Invoice{
		invoiceWith(entity.StatusPaid, 200, datePtr(2026, time.April, 1)),
		invoiceWith(entity.StatusPaid, 300, datePtr(2026, time.March, 31)),
	}

	k := invoicing.ComputeKPIs(invoices, now, entity.DeclarationQuarterly)

	assert.True(t, decimal.NewFromInt(500).Equal(k.TotalRevenue))
	assert.True(t, decimal.NewFromInt(200).Equal(k.ToDeclare),
		"solo la factura del 1 de abril pertenece al trimestre en curso")
}

func TestComputeKPIs_SinIssueDate(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	invoices := []*entity.Invoice{
		invoiceWith(entity.StatusPaid, 80, nil),
		invoiceWith(entity.StatusOverdue, 20, nil),
	}

	k := invoicing.ComputeKPIs(invoices, now, entity.DeclarationMonthly)

	// Sin fecha de emisión siguen contando en revenue/pending…
	assert.True(t, decimal.NewFromInt(80).Equal(k.TotalRevenue))
	assert.True(t, decimal.NewFromInt(20).Equal(k.PendingAmount))
	assert.Equal(t, 1, k.PendingCount)
	// …pero nunca en ToDeclare: no se pueden situar en un periodo.
	assert.True(t, k.ToDeclare.IsZero())
}

func TestComputeKPIs_DraftNoCuenta(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	invoices := []*entity.Invoice{
		invoiceWith(entity.StatusDraft, 999, datePtr(2026, time.May, 5)),
	}

	k := invoicing.ComputeKPIs(invoices, now, entity.DeclarationMonthly)

	assert.True(t, k.TotalRevenue.IsZero())
	assert.True(t, k.PendingAmount.IsZero())
	assert.Equal(t, 0, k.PendingCount)
	assert.True(t, k.ToDeclare.IsZero())
}

func TestComputeKPIs_FacturaSinLineas(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	invoices := []*entity.Invoice{
		{Status: entity.StatusPaid, IssueDate: datePtr(2026, time.May, 1)},
		invoiceWith(entity.StatusPaid, 40, datePtr(2026, time.May, 2)),
	}

	k := invoicing.ComputeKPIs(invoices, now, entity.DeclarationMonthly)

	// Una factura sin líneas aporta 0, no es un error.
	assert.True(t, decimal.NewFromInt(40).Equal(k.TotalRevenue))
	assert.True(t, decimal.NewFromInt(40).Equal(k.ToDeclare))
}

// ── PeriodStart ───────────────────────────────────────────────────────────────

func TestPeriodStart(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		mode string
		want string
	}{
		{"mensual mitad de mes", time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC), entity.DeclarationMonthly, "2026-05-01"},
		{"mensual 29 de febrero", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), entity.DeclarationMonthly, "2024-02-01"},
		{"trimestral enero (Q1)", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), entity.DeclarationQuarterly, "2026-01-01"},
		{"trimestral marzo (Q1)", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), entity.DeclarationQuarterly, "2026-01-01"},
		{"trimestral abril (Q2)", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), entity.DeclarationQuarterly, "2026-04-01"},
		{"trimestral diciembre (Q4)", time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), entity.DeclarationQuarterly, "2026-10-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := invoicing.PeriodStart(tc.now, tc.mode)
			assert.Equal(t, tc.want, got.Format("2006-01-02"))
		})
	}
}
