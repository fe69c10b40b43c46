package ports

import (
	"context"

	"github.com/nexa-agro/auth-api/internal/core/domain"
)

// RegisterInput carries the fields accepted by POST /auth/registro.
type RegisterInput struct {
	Nombre      string
	Email       string
	Contrasena  string
	Telefono    string
	Direccion   string
	TipoUsuario string
}

// LoginInput carries the fields accepted by POST /auth/login.
type LoginInput struct {
	Email      string
	Contrasena string
}

// AuthResult bundles the user projection with a freshly issued session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
}
