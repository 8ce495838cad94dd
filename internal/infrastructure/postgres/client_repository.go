package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
// Las sub-colecciones viven en client_emails y client_phones; se reemplazan
// en bloque dentro de la misma transacción que la fila principal.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create inserta el cliente con sus emails y teléfonos.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO clients (id, owner_id, company_name, siret, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.Exec(ctx, query,
		c.ID, c.OwnerID, c.CompanyName, c.SIRET, c.Address, c.Notes, c.CreatedAt, c.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	if err := insertContacts(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByID obtiene el cliente con sub-colecciones, (nil, nil) si no existe o
// no pertenece a ownerID.
func (r *ClientRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Client, error) {
	query := `
		SELECT id, owner_id, company_name, siret, address, notes, created_at, updated_at
		FROM clients WHERE id = $1 AND owner_id = $2`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.CompanyName, &c.SIRET, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	if err := r.loadContacts(ctx, []*entity.Client{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByOwner lista la cartera del propietario con sub-colecciones resueltas,
// ordenada por razón social.
func (r *ClientRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Client, error) {
	query := `
		SELECT id, owner_id, company_name, siret, address, notes, created_at, updated_at
		FROM clients WHERE owner_id = $1 ORDER BY company_name`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.CompanyName, &c.SIRET, &c.Address, &c.Notes,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadContacts(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update actualiza la fila principal y reemplaza en bloque las sub-colecciones.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE clients SET company_name = $3, siret = $4, address = $5, notes = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $2`
	if _, err := tx.Exec(ctx, query,
		c.ID, c.OwnerID, c.CompanyName, c.SIRET, c.Address, c.Notes, c.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM client_emails WHERE client_id = $1`, c.ID); err != nil {
		return fmt.Errorf("delete client emails: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM client_phones WHERE client_id = $1`, c.ID); err != nil {
		return fmt.Errorf("delete client phones: %w", err)
	}
	if err := insertContacts(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete elimina el cliente; las sub-colecciones caen por ON DELETE CASCADE.
func (r *ClientRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func insertContacts(ctx context.Context, tx pgx.Tx, c *entity.Client) error {
	for i, email := range c.Emails {
		if _, err := tx.Exec(ctx,
			`INSERT INTO client_emails (client_id, position, email) VALUES ($1, $2, $3)`,
			c.ID, i, email,
		); err != nil {
			return fmt.Errorf("insert client email: %w", err)
		}
	}
	for i, phone := range c.Phones {
		if _, err := tx.Exec(ctx,
			`INSERT INTO client_phones (client_id, position, phone) VALUES ($1, $2, $3)`,
			c.ID, i, phone,
		); err != nil {
			return fmt.Errorf("insert client phone: %w", err)
		}
	}
	return nil
}

// loadContacts resuelve emails y teléfonos de los clientes dados en dos
// consultas, respetando el orden de alta (position).
func (r *ClientRepo) loadContacts(ctx context.Context, clients []*entity.Client) error {
	if len(clients) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Client, len(clients))
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	rows, err := r.q.Query(ctx,
		`SELECT client_id, email FROM client_emails WHERE client_id = ANY($1) ORDER BY client_id, position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load client emails: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var clientID, email string
		if err := rows.Scan(&clientID, &email); err != nil {
			return fmt.Errorf("scan client email: %w", err)
		}
		if c := byID[clientID]; c != nil {
			c.Emails = append(c.Emails, email)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.q.Query(ctx,
		`SELECT client_id, phone FROM client_phones WHERE client_id = ANY($1) ORDER BY client_id, position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load client phones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var clientID, phone string
		if err := rows.Scan(&clientID, &phone); err != nil {
			return fmt.Errorf("scan client phone: %w", err)
		}
		if c := byID[clientID]; c != nil {
			c.Phones = append(c.Phones, phone)
		}
	}
	return rows.Err()
}
