package dto

// ProfileRequest entrada para guardar el perfil del emisor (onboarding y
// edición posterior comparten formulario).
type ProfileRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string `json:"last_name" validate:"required,min=1,max=100"`
	Phone           string `json:"phone" validate:"omitempty"`
	Address         string `json:"address" validate:"omitempty,max=500"`
	SIRET           string `json:"siret" validate:"omitempty"`
	DeclarationMode string `json:"declaration_mode" validate:"omitempty,oneof=monthly quarterly"`
}

// ProfileResponse salida del perfil. Phone y SIRET van en forma de
// presentación (agrupados con espacios).
type ProfileResponse struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	SIRET               string `json:"siret"`
	DeclarationMode     string `json:"declaration_mode"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

// BankDetailsRequest entrada para guardar las coordenadas bancarias.
type BankDetailsRequest struct {
	IBAN string `json:"iban" validate:"required"`
	BIC  string `json:"bic" validate:"required"`
}

// BankDetailsResponse salida de coordenadas bancarias, IBAN agrupado de 4 en 4.
type BankDetailsResponse struct {
	IBAN string `json:"iban"`
	BIC  string `json:"bic"`
}
