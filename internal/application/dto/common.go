package dto

// DateLayout formato de fechas en la API: ISO corto, sin hora.
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Fields errores de validación por campo, presente solo en 400 de
	// formulario (clave = campo, valor = mensaje).
	Fields map[string]string `json:"fields,omitempty"`
}
