package entity

import "time"

// Cadencias de declaración de ingresos ante el organismo social (URSSAF).
const (
	DeclarationMonthly   = "monthly"
	DeclarationQuarterly = "quarterly"
)

// Profile datos del emisor (perfil del usuario autenticado).
// DeclarationMode es editable hacia adelante; los periodos ya declarados no se
// recalculan con la cadencia nueva.
type Profile struct {
	ID                  string // igual al ID del usuario
	FirstName           string
	LastName            string
	Phone               string // forma canónica de 9 dígitos
	Address             string
	SIRET               string
	DeclarationMode     string // monthly | quarterly
	OnboardingCompleted bool
	UpdatedAt           time.Time
}

// BankDetails coordenadas bancarias del emisor, impresas en la factura.
type BankDetails struct {
	UserID    string
	IBAN      string // forma canónica: sin espacios, mayúsculas
	BIC       string
	UpdatedAt time.Time
}
