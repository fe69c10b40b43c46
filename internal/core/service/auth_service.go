package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexa-agro/auth-api/internal/core/domain"
	"github.com/nexa-agro/auth-api/internal/core/password"
	"github.com/nexa-agro/auth-api/internal/core/ports"
	"github.com/nexa-agro/auth-api/internal/core/token"
)

// AuthService implements registration and login against the user directory.
type AuthService struct {
	directory ports.UserDirectory
	codec     *token.Codec
}

func NewAuthService(directory ports.UserDirectory, codec *token.Codec) *AuthService {
	return &AuthService{directory: directory, codec: codec}
}

// Register creates a new account on the default "basico" plan and issues a
// session token for it. All input validation happens before any directory
// call. The email pre-check is a fast path only; the directory's uniqueness
// constraint is the authoritative defense against concurrent registrations.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Nombre == "" || input.Email == "" || input.Contrasena == "" || input.TipoUsuario == "" {
		return nil, fmt.Errorf("%w: faltan campos obligatorios: nombre, email, contrasena, tipo_usuario", domain.ErrValidation)
	}
	if !domain.ValidRole(input.TipoUsuario) {
		return nil, fmt.Errorf("%w: tipo_usuario debe ser: productor, empresa o transportista", domain.ErrInvalidUserType)
	}
	if len(input.Contrasena) < 6 {
		return nil, fmt.Errorf("%w: la contraseña debe tener mínimo 6 caracteres", domain.ErrValidation)
	}

	_, err := s.directory.FindUserByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailRegistered
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	tipo, err := s.directory.FindUserTypeByName(ctx, input.TipoUsuario)
	if err != nil {
		return nil, err
	}
	plan, err := s.directory.FindSubscriptionPlanByName(ctx, domain.DefaultPlanName)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(input.Contrasena)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.directory.CreateUser(ctx, &domain.User{
		Nombre:            input.Nombre,
		Email:             input.Email,
		PasswordHash:      hash,
		Telefono:          input.Telefono,
		Direccion:         input.Direccion,
		Estado:            domain.EstadoActivo,
		SuscripcionActiva: true,
		TipoUsuarioID:     tipo.ID,
		SuscripcionID:     plan.ID,
		TipoUsuario:       tipo,
		Suscripcion:       plan,
	})
	if err != nil {
		return nil, err
	}

	tok, err := s.codec.Issue(created.ID, created.Email, tipo.Nombre)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{User: created, Token: tok}, nil
}

// Login authenticates an email/password pair. Unknown email and wrong
// password produce the same error so callers cannot probe which accounts
// exist. Inactive accounts are refused before the password is compared.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Contrasena == "" {
		return nil, fmt.Errorf("%w: email y contraseña son obligatorios", domain.ErrValidation)
	}

	user, err := s.directory.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Estado != domain.EstadoActivo {
		return nil, domain.ErrAccountInactive
	}

	if !password.Verify(input.Contrasena, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	rol := ""
	if user.TipoUsuario != nil {
		rol = user.TipoUsuario.Nombre
	}
	tok, err := s.codec.Issue(user.ID, user.Email, rol)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{User: user, Token: tok}, nil
}
