package domain

import "errors"

// Sentinel errors for the auth domain. The transport layer maps these to
// HTTP status codes with errors.Is; status dispatch never depends on the
// message text.
var (
	ErrValidation         = errors.New("datos de entrada inválidos")
	ErrEmailRegistered    = errors.New("el email ya está registrado")
	ErrInvalidUserType    = errors.New("tipo de usuario inválido")
	ErrPlanNotFound       = errors.New("plan básico no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountInactive    = errors.New("tu cuenta está suspendida o inactiva")
	ErrUserNotFound       = errors.New("usuario no encontrado")
)
