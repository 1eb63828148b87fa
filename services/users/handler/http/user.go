package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
	"github.com/piresc/jumbaa/services/users"
)

// UserHandler handles HTTP requests for the signed-in user's profile
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetProfile returns the profile of the signed-in user
func (h *UserHandler) GetProfile(c echo.Context) error {
	session := appctx.SessionFromEcho(c)
	if !session.IsAuthenticated() {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), session.UserID)
	if err != nil {
		logFailure("Failed to get profile", c, err)
		return utils.DomainErrorResponse(c, err, "User not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile changes the first and last name of the signed-in user
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	session := appctx.SessionFromEcho(c)
	if !session.IsAuthenticated() {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), session.UserID, &req)
	if err != nil {
		logFailure("Failed to update profile", c, err)
		return utils.DomainErrorResponse(c, err, "User not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// DeleteAccount removes the signed-in user
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	session := appctx.SessionFromEcho(c)

	if err := h.userUC.DeleteAccount(c.Request().Context(), session); err != nil {
		logFailure("Failed to delete account", c, err)
		return utils.DomainErrorResponse(c, err, "User not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account deleted successfully", nil)
}
