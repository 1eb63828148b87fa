package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/database"
	jwtpkg "github.com/piresc/jumbaa/internal/pkg/jwt"
	"github.com/piresc/jumbaa/internal/pkg/middleware"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
	"github.com/piresc/jumbaa/services/users/handler/http"
)

// Handler coordinates all protocol handlers for the users service
type Handler struct {
	userHandler *http.UserHandler
	authHandler *http.AuthHandler
	revocations jwtpkg.RevocationStore
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	userHandler *http.UserHandler,
	authHandler *http.AuthHandler,
	revocations jwtpkg.RevocationStore,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		userHandler: userHandler,
		authHandler: authHandler,
		revocations: revocations,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authMiddleware := middleware.JWTAuthMiddleware(h.cfg.JWT, h.revocations)

	auth := e.Group("/auth")
	if h.redisClient != nil && h.cfg.RateLimit.Limit > 0 {
		auth.Use(middleware.IPRateLimiter("auth", h.cfg.RateLimit.Limit, h.cfg.RateLimit.Period, h.redisClient))
	}
	auth.POST("/signup", h.authHandler.Signup)
	auth.POST("/login", h.authHandler.Login)
	auth.POST("/logout", h.authHandler.Logout, authMiddleware)

	me := e.Group("/users/me", authMiddleware)
	me.GET("", h.userHandler.GetProfile)
	me.PUT("", h.userHandler.UpdateProfile)
	me.DELETE("", h.userHandler.DeleteAccount)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return utils.NotFoundResponse(c, "")
	})
}
