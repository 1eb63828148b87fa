package handler

import (
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/jumbaa/internal/pkg/jwt"
	"github.com/piresc/jumbaa/internal/pkg/middleware"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
	"github.com/piresc/jumbaa/services/houses/handler/http"
)

// Handler coordinates all protocol handlers for the houses service
type Handler struct {
	houseHandler    *http.HouseHandler
	favoriteHandler *http.FavoriteHandler
	revocations     jwtpkg.RevocationStore
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	houseHandler *http.HouseHandler,
	favoriteHandler *http.FavoriteHandler,
	revocations jwtpkg.RevocationStore,
	cfg *models.Config,
) *Handler {
	return &Handler{
		houseHandler:    houseHandler,
		favoriteHandler: favoriteHandler,
		revocations:     revocations,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authMiddleware := middleware.JWTAuthMiddleware(h.cfg.JWT, h.revocations)
	optionalAuth := middleware.OptionalJWTMiddleware(h.cfg.JWT, h.revocations)

	listings := e.Group("/houses")
	listings.GET("", h.houseHandler.ListHouses)
	listings.GET("/feed", h.houseHandler.Feed)
	listings.GET("/nearby", h.houseHandler.Nearby)
	listings.GET("/:id", h.houseHandler.GetHouse, optionalAuth)
	listings.POST("", h.houseHandler.CreateHouse, authMiddleware)

	favorites := e.Group("/favorites", authMiddleware)
	favorites.GET("", h.favoriteHandler.ListFavorites)
	favorites.PUT("/:house_id", h.favoriteHandler.AddFavorite)
	favorites.DELETE("/:house_id", h.favoriteHandler.RemoveFavorite)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return utils.NotFoundResponse(c, "")
	})
}
