package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación de ProfileRepository sobre PostgreSQL
// (tablas profiles y user_bank_details).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// GetByUserID obtiene el perfil, (nil, nil) si el usuario no lo completó aún.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT id, first_name, last_name, phone, address, siret,
		       declaration_mode, onboarding_completed, updated_at
		FROM profiles WHERE id = $1`
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.Address, &p.SIRET,
		&p.DeclarationMode, &p.OnboardingCompleted, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Upsert crea o actualiza el perfil (clave primaria = id del usuario).
func (r *ProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, first_name, last_name, phone, address, siret,
		                      declaration_mode, onboarding_completed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			siret = EXCLUDED.siret,
			declaration_mode = EXCLUDED.declaration_mode,
			onboarding_completed = EXCLUDED.onboarding_completed,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Phone, p.Address, p.SIRET,
		p.DeclarationMode, p.OnboardingCompleted, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetBankDetails obtiene las coordenadas bancarias, (nil, nil) si no hay.
func (r *ProfileRepo) GetBankDetails(ctx context.Context, userID string) (*entity.BankDetails, error) {
	query := `
		SELECT user_id, iban, bic, updated_at
		FROM user_bank_details WHERE user_id = $1`
	var b entity.BankDetails
	err := r.q.QueryRow(ctx, query, userID).Scan(&b.UserID, &b.IBAN, &b.BIC, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank details: %w", err)
	}
	return &b, nil
}

// UpsertBankDetails crea o reemplaza las coordenadas bancarias del usuario.
func (r *ProfileRepo) UpsertBankDetails(ctx context.Context, b *entity.BankDetails) error {
	query := `
		INSERT INTO user_bank_details (user_id, iban, bic, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			iban = EXCLUDED.iban,
			bic = EXCLUDED.bic,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, b.UserID, b.IBAN, b.BIC, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert bank details: %w", err)
	}
	return nil
}
