package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
// La tabla invoices lleva un índice único sobre invoice_number; las líneas
// viven en invoice_items y siempre se escriben en la misma transacción que
// la cabecera.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta cabecera y líneas. Un choque con el índice único de
// invoice_number se devuelve como domain.ErrSequenceConflict.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO invoices (id, owner_id, client_id, invoice_number, status,
		                      issue_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.Exec(ctx, query,
		inv.ID, inv.OwnerID, inv.ClientID, inv.Number, inv.Status,
		inv.IssueDate, inv.DueDate, inv.CreatedAt, inv.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSequenceConflict
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	if err := insertItems(ctx, tx, inv); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByID obtiene la factura con líneas, (nil, nil) si no existe o no
// pertenece a ownerID.
func (r *InvoiceRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, client_id, invoice_number, status, issue_date, due_date, created_at, updated_at
		FROM invoices WHERE id = $1 AND owner_id = $2`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&inv.ID, &inv.OwnerID, &inv.ClientID, &inv.Number, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Invoice{&inv}); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListByOwner lista las facturas del propietario con líneas, más recientes
// primero (las sin fecha de emisión al final).
func (r *InvoiceRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, client_id, invoice_number, status, issue_date, due_date, created_at, updated_at
		FROM invoices WHERE owner_id = $1
		ORDER BY issue_date DESC NULLS LAST, invoice_number DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.OwnerID, &inv.ClientID, &inv.Number, &inv.Status,
			&inv.IssueDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// CountByOwnerBetween cuenta las facturas con issue_date en [start, end].
func (r *InvoiceRepo) CountByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM invoices
		WHERE owner_id = $1 AND issue_date >= $2 AND issue_date <= $3`
	var n int
	if err := r.q.QueryRow(ctx, query, ownerID, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// Update actualiza la cabecera y reemplaza las líneas en bloque.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE invoices SET client_id = $3, status = $4, issue_date = $5, due_date = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $2`
	if _, err := tx.Exec(ctx, query,
		inv.ID, inv.OwnerID, inv.ClientID, inv.Status, inv.IssueDate, inv.DueDate, inv.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, inv.ID); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	if err := insertItems(ctx, tx, inv); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdateStatus cambia solo el estado de la factura.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, ownerID, id, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE invoices SET status = $3, updated_at = NOW() WHERE id = $1 AND owner_id = $2`,
		id, ownerID, status,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura; las líneas caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, inv *entity.Invoice) error {
	for i, item := range inv.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO invoice_items (id, invoice_id, position, title, description, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, inv.ID, i, item.Title, item.Description, item.Quantity, item.UnitPrice,
		); err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// loadItems resuelve las líneas de las facturas dadas en una consulta,
// respetando el orden de alta (position).
func (r *InvoiceRepo) loadItems(ctx context.Context, invoices []*entity.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Invoice, len(invoices))
	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
		ids = append(ids, inv.ID)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, title, description, quantity, unit_price
		FROM invoice_items WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Title, &item.Description,
			&item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		if inv := byID[item.InvoiceID]; inv != nil {
			inv.Items = append(inv.Items, item)
		}
	}
	return rows.Err()
}
