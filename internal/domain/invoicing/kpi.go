package invoicing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// KPIs cifras del dashboard financiero del emisor.
type KPIs struct {
	TotalRevenue  decimal.Decimal // facturas paid, sin límite temporal
	PendingAmount decimal.Decimal // facturas sent u overdue
	PendingCount  int
	ToDeclare     decimal.Decimal // emitidas (paid/sent/overdue) desde el inicio del periodo de declaración
}

// PeriodStart devuelve el primer día del periodo de declaración en curso:
// día 1 del mes para cadencia mensual, día 1 del primer mes del trimestre para
// cadencia trimestral. Siempre aritmética de calendario (día 1), nunca una
// aproximación por número de días.
func PeriodStart(now time.Time, mode string) time.Time {
	if mode == entity.DeclarationQuarterly {
		quarter := (int(now.Month()) - 1) / 3
		return time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// ComputeKPIs agrega las facturas del propietario (con sus líneas resueltas)
// en las cuatro cifras del dashboard. Es un recálculo puro sobre el conjunto
// completo: no hay estado incremental que pueda quedar a medias.
//
// Facturas sin issue_date cuentan en TotalRevenue y Pending según su estado,
// pero quedan fuera de ToDeclare (no se puede situar en un periodo).
func ComputeKPIs(invoices []*entity.Invoice, now time.Time, mode string) KPIs {
	periodStart := PeriodStart(now, mode)

	k := KPIs{
		TotalRevenue:  decimal.Zero,
		PendingAmount: decimal.Zero,
		ToDeclare:     decimal.Zero,
	}
	for _, inv := range invoices {
		total := Subtotal(inv.Items)

		switch inv.Status {
		case entity.StatusPaid:
			k.TotalRevenue = k.TotalRevenue.Add(total)
		case entity.StatusSent, entity.StatusOverdue:
			k.PendingAmount = k.PendingAmount.Add(total)
			k.PendingCount++
		default:
			// draft: no cuenta en ninguna cifra
			continue
		}

		if inv.IssueDate != nil && !inv.IssueDate.Before(periodStart) {
			k.ToDeclare = k.ToDeclare.Add(total)
		}
	}
	return k
}
