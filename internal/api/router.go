package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sesamelabs/identity-service/internal/api/handler"
	"github.com/sesamelabs/identity-service/internal/api/middleware"
	"github.com/sesamelabs/identity-service/internal/core/domain"
	"github.com/sesamelabs/identity-service/internal/core/ports"
	"github.com/sesamelabs/identity-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	authService ports.AuthService,
	userService ports.UserService,
	verifier middleware.TokenVerifier,
	policy middleware.RoleGate,
	db *mongo.Database,
	rdb *redis.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(verifier)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	e.GET("/me", userHandler.Me, authRequired)
	e.PUT("/users/:id", userHandler.Update, authRequired)
	e.GET("/admin/users", userHandler.List, authRequired, middleware.RBAC(policy, domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
