package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	"github.com/piresc/jumbaa/internal/utils"
	"github.com/piresc/jumbaa/services/houses"
)

// FavoriteHandler handles the saved listings of the signed-in user
type FavoriteHandler struct {
	houseUC houses.HouseUC
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(houseUC houses.HouseUC) *FavoriteHandler {
	return &FavoriteHandler{
		houseUC: houseUC,
	}
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	session := appctx.SessionFromEcho(c)
	if !session.IsAuthenticated() {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.houseUC.ListFavorites(c.Request().Context(), session.UserID)
	if err != nil {
		logFailure("Failed to list favorites", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Favorites retrieved successfully", list)
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	session := appctx.SessionFromEcho(c)
	if !session.IsAuthenticated() {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.houseUC.AddFavorite(c.Request().Context(), session.UserID, c.Param("house_id")); err != nil {
		logFailure("Failed to add favorite", c, err)
		return utils.DomainErrorResponse(c, err, "House not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Added to favorites", nil)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	session := appctx.SessionFromEcho(c)
	if !session.IsAuthenticated() {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.houseUC.RemoveFavorite(c.Request().Context(), session.UserID, c.Param("house_id")); err != nil {
		logFailure("Failed to remove favorite", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Removed from favorites", nil)
}
