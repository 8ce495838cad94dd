package repository

import (
	"context"

	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail devuelve (nil, nil) si el email no existe: el caso de uso de
	// login decide el error para no filtrar qué emails están registrados.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
