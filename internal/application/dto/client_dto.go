package dto

import "time"

// ClientRequest entrada para crear o editar un cliente. Emails y Phones
// reemplazan en bloque las sub-colecciones existentes.
type ClientRequest struct {
	CompanyName string   `json:"company_name" validate:"required,min=1,max=200"`
	SIRET       string   `json:"siret" validate:"omitempty"`
	Address     string   `json:"address" validate:"omitempty,max=500"`
	Notes       string   `json:"notes" validate:"omitempty,max=2000"`
	Emails      []string `json:"emails"`
	Phones      []string `json:"phones"`
}

// ClientResponse salida de un cliente con sub-colecciones resueltas.
// SIRET y Phones van en forma de presentación (agrupados), no canónica.
type ClientResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	SIRET       string    `json:"siret"`
	Address     string    `json:"address"`
	Notes       string    `json:"notes"`
	Emails      []string  `json:"emails"`
	Phones      []string  `json:"phones"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
