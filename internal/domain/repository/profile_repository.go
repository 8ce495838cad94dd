package repository

import (
	"context"

	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para el perfil del emisor
// y sus coordenadas bancarias.
type ProfileRepository interface {
	// GetByUserID devuelve (nil, nil) si el usuario aún no completó el
	// onboarding; el caller aplica los valores por defecto.
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	// Upsert crea el perfil en el primer guardado y lo actualiza después.
	Upsert(ctx context.Context, profile *entity.Profile) error

	GetBankDetails(ctx context.Context, userID string) (*entity.BankDetails, error)
	UpsertBankDetails(ctx context.Context, details *entity.BankDetails) error
}
