package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexa-agro/auth-api/internal/api/metrics"
	"github.com/nexa-agro/auth-api/internal/core/domain"
	"github.com/nexa-agro/auth-api/internal/core/ports"
)

type AuthHandler struct {
	auth     ports.AuthService
	profiles ports.ProfileService
}

func NewAuthHandler(auth ports.AuthService, profiles ports.ProfileService) *AuthHandler {
	return &AuthHandler{auth: auth, profiles: profiles}
}

// Registro creates a new marketplace account.
//
// @Summary      Registrar un nuevo usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registroRequest  true  "Datos de registro"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/registro [post]
func (h *AuthHandler) Registro(c echo.Context) error {
	var req registroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Nombre:      req.Nombre,
		Email:       req.Email,
		Contrasena:  req.Contrasena,
		Telefono:    req.Telefono,
		Direccion:   req.Direccion,
		TipoUsuario: req.TipoUsuario,
	})
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(req.TipoUsuario).Inc()

	return c.JSON(http.StatusCreated, authResponse{
		Mensaje: "Usuario registrado exitosamente",
		Usuario: res.User,
		Token:   res.Token,
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciales"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		Email:      req.Email,
		Contrasena: req.Contrasena,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResultLabel(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Mensaje: "Inicio de sesión exitoso",
		Usuario: res.User,
		Token:   res.Token,
	})
}

// Perfil returns the authenticated user's profile.
//
// @Summary      Obtener perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  perfilResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/perfil [get]
func (h *AuthHandler) Perfil(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.profiles.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perfilResponse{Usuario: user})
}

func loginResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountInactive):
		return "inactive_account"
	default:
		return "error"
	}
}
