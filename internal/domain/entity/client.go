package entity

import "time"

// Client representa un cliente facturable, propiedad de un usuario.
// Emails y Phones son sub-colecciones propias del cliente (tablas
// client_emails / client_phones); se reemplazan en bloque al editar.
type Client struct {
	ID          string
	OwnerID     string
	CompanyName string
	SIRET       string // 14 dígitos canónicos
	Address     string
	Notes       string
	Emails      []string
	Phones      []string // forma canónica de 9 dígitos
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
