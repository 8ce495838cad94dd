package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrSequenceConflict: el número de factura candidato ya existe en la base.
	// El caso de uso recuenta y reintenta un número acotado de veces antes de
	// propagar este error al usuario.
	ErrSequenceConflict = errors.New("no se pudo asignar un número de factura único")

	// ErrInvalidTransition: cambio de estado de factura no permitido por la
	// máquina de estados.
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)
