// Package pdf genera la representación imprimible (PDF A4) de una factura de
// auto-entrepreneur.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: FACTURE + N° + fechas (emisión / vencimiento)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: nombre, SIRET, teléfono, dirección                 │
//	│  CLIENTE: razón social, SIRET, dirección                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant. | P. unitario | Total           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + mención "TVA non applicable, art. 293 B du CGI"    │
//	│  FOOTER: coordenadas bancarias (IBAN / BIC)                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/tu-usuario/facturio/internal/application/billing"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/invoicing"
	"github.com/tu-usuario/facturio/pkg/banking"
	"github.com/tu-usuario/facturio/pkg/contact"
	"github.com/tu-usuario/facturio/pkg/money"
)

// Mención legal obligatoria para el régimen de franquicia de IVA del
// auto-entrepreneur.
const vatMention = "TVA non applicable, art. 293 B du CGI"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(data appbilling.PDFData) ([]byte, error) {
	issuerName := data.Profile.FirstName + " " + data.Profile.LastName

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Facture "+data.Invoice.Number, true).
		WithAuthor(issuerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(data.Profile, data.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(data.Invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data.Invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(data.Bank) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título FACTURE + número (izq), fechas (der).
func headerRow(inv *entity.Invoice) core.Row {
	issue, due := "—", "—"
	if inv.IssueDate != nil {
		issue = inv.IssueDate.Format("02/01/2006")
	}
	if inv.DueDate != nil {
		due = inv.DueDate.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("FACTURE", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+inv.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Date d'émission : "+issue, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Date d'échéance : "+due, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// partiesRow: emisor (izq) y cliente (der), en columnas paralelas.
func partiesRow(p *entity.Profile, c *entity.Client) core.Row {
	issuerLines := []string{
		p.FirstName + " " + p.LastName,
		nonEmpty(p.Address, ""),
	}
	if p.SIRET != "" {
		issuerLines = append(issuerLines, "SIRET : "+contact.FormatSIRET(p.SIRET))
	}
	if p.Phone != "" {
		issuerLines = append(issuerLines, "Tél : "+contact.FormatPhone(p.Phone))
	}

	clientLines := []string{
		c.CompanyName,
		nonEmpty(c.Address, ""),
	}
	if c.SIRET != "" {
		clientLines = append(clientLines, "SIRET : "+contact.FormatSIRET(c.SIRET))
	}

	left := col.New(6).Add(text.New("ÉMETTEUR", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
	top := 6.0
	for _, l := range issuerLines {
		if l == "" {
			continue
		}
		left.Add(text.New(l, props.Text{Size: 9, Top: top}))
		top += 5
	}

	right := col.New(6).Add(text.New("CLIENT", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
	top = 6.0
	for _, l := range clientLines {
		if l == "" {
			continue
		}
		right.Add(text.New(l, props.Text{Size: 9, Top: top}))
		top += 5
	}

	return row.New(30).Add(left, right)
}

// tableHeaderRow: cabecera de la tabla de prestaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qté", 1, align.Center),
		h("Prix unitaire", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de prestación.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		label := item.Title
		if item.Description != "" {
			label += " — " + item.Description
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				label,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				item.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatEuro(item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatEuro(invoicing.ItemTotal(item)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total a pagar + mención de franquicia de TVA.
func totalRow(inv *entity.Invoice) core.Row {
	total := invoicing.Subtotal(inv.Items)
	return row.New(16).Add(
		col.New(7).Add(
			text.New(vatMention, props.Text{
				Size: 8, Color: colorGray, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("TOTAL À PAYER", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
			text.New(money.FormatEuro(total), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 8, Right: 1,
			}),
		),
	)
}

// footerRows: coordenadas bancarias para el pago por transferencia.
// Sin IBAN guardado el pie se omite.
func footerRows(bank *entity.BankDetails) []core.Row {
	if bank == nil || bank.IBAN == "" {
		return nil
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("RÈGLEMENT PAR VIREMENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New("IBAN : "+banking.FormatIBAN(bank.IBAN), props.Text{
				Size: 9, Top: 1,
			}),
			text.New("BIC : "+bank.BIC, props.Text{
				Size: 9, Top: 6,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
