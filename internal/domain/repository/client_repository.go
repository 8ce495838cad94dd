package repository

import (
	"context"

	"github.com/tu-usuario/facturio/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client y sus
// sub-colecciones de emails y teléfonos.
type ClientRepository interface {
	// Create inserta el cliente con sus emails y teléfonos en una transacción.
	Create(ctx context.Context, client *entity.Client) error
	// GetByID devuelve el cliente con Emails y Phones resueltos, o (nil, nil)
	// si no existe o no pertenece a ownerID.
	GetByID(ctx context.Context, ownerID, id string) (*entity.Client, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Client, error)
	// Update reemplaza en bloque las sub-colecciones: borra emails/teléfonos
	// actuales e inserta los nuevos dentro de la misma transacción.
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, ownerID, id string) error
}
