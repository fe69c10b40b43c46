package handler

import "github.com/nexa-agro/auth-api/internal/core/domain"

// --- Request / Response types ---

type registroRequest struct {
	Nombre      string `json:"nombre"       validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Contrasena  string `json:"contrasena"   validate:"required,min=6"`
	Telefono    string `json:"telefono"`
	Direccion   string `json:"direccion"`
	TipoUsuario string `json:"tipo_usuario" validate:"required,oneof=productor empresa transportista"`
}

type loginRequest struct {
	Email      string `json:"email"      validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type authResponse struct {
	Mensaje string       `json:"mensaje"`
	Usuario *domain.User `json:"usuario"`
	Token   string       `json:"token"`
}

type perfilResponse struct {
	Usuario *domain.User `json:"usuario"`
}
