package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
	"github.com/piresc/jumbaa/services/users"
)

// AuthHandler handles sign-up, login and logout
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Signup handles account creation requests
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Signup(c.Request().Context(), &req)
	if err != nil {
		logFailure("Signup failed", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", resp)
}

// Login handles email and password login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		logFailure("Login failed", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout revokes the token used for this request
func (h *AuthHandler) Logout(c echo.Context) error {
	session := appctx.SessionFromEcho(c)

	if err := h.userUC.Logout(c.Request().Context(), session); err != nil {
		logFailure("Logout failed", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// logFailure logs server errors at error level and client errors at debug level
func logFailure(msg string, c echo.Context, err error) {
	fields := []logger.Field{
		logger.ErrorField(err),
		logger.String("request_id", appctx.RequestIDFromEcho(c)),
		logger.String("path", c.Path()),
	}
	if utils.StatusFromError(err) >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
		return
	}
	logger.Debug(msg, fields...)
}
