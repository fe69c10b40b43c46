package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nexa-agro/auth-api/internal/api/handler"
	"github.com/nexa-agro/auth-api/internal/api/middleware"
	"github.com/nexa-agro/auth-api/internal/core/domain"
	"github.com/nexa-agro/auth-api/internal/core/ports"
	"github.com/nexa-agro/auth-api/internal/core/service"
	"github.com/nexa-agro/auth-api/internal/core/token"
)

// RouterDeps carries everything the router needs. Limiter, DB, and Redis may
// be nil (tests run without infrastructure); a nil Limiter disables rate
// limiting and nil DB/Redis are reported as unready by the readiness probe.
type RouterDeps struct {
	Directory ports.UserDirectory
	Codec     *token.Codec
	Limiter   middleware.RateLimiter
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Directory, deps.Codec)
	profileService := service.NewProfileService(deps.Directory)
	authHandler := handler.NewAuthHandler(authService, profileService)

	var credentialMW []echo.MiddlewareFunc
	if deps.Limiter != nil {
		credentialMW = append(credentialMW, middleware.RateLimit(deps.Limiter, deps.Log))
	}

	// --- Auth routes ---
	g := e.Group("/auth")
	g.POST("/registro", authHandler.Registro, credentialMW...)
	g.POST("/login", authHandler.Login, credentialMW...)
	g.GET("/perfil", authHandler.Perfil,
		middleware.Auth(deps.Codec),
		middleware.RequireRoles(domain.RoleProductor, domain.RoleEmpresa, domain.RoleTransportista),
	)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
