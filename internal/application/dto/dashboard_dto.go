package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los importes van por duplicado: el decimal crudo para cálculos del cliente
// y la etiqueta en euros (formato francés) para mostrar tal cual.
type DashboardSummaryDTO struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`  // facturas paid, histórico
	PendingAmount decimal.Decimal `json:"pending_amount"` // sent + overdue
	PendingCount  int             `json:"pending_count"`
	ToDeclare     decimal.Decimal `json:"to_declare"` // emitidas desde el inicio del periodo

	TotalRevenueLabel  string `json:"total_revenue_label"`
	PendingAmountLabel string `json:"pending_amount_label"`
	ToDeclareLabel     string `json:"to_declare_label"`

	// DeclarationMode cadencia aplicada (monthly | quarterly) y PeriodStart
	// el primer día del periodo en curso (YYYY-MM-DD).
	DeclarationMode string `json:"declaration_mode"`
	PeriodStart     string `json:"period_start"`
}
