package context

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// SetSession attaches the session to both the echo context and the request context
func SetSession(c echo.Context, session models.Session) {
	c.Set(string(SessionKey), session)
	if session.IsAuthenticated() {
		c.Set("user_id", session.UserID)
	}
	ctx := WithSession(c.Request().Context(), session)
	c.SetRequest(c.Request().WithContext(ctx))
}

// SessionFromEcho returns the session set by the auth middleware, anonymous if none was set
func SessionFromEcho(c echo.Context) models.Session {
	if session, ok := c.Get(string(SessionKey)).(models.Session); ok {
		return session
	}
	return GetSession(c.Request().Context())
}

// SetRequestID attaches the request ID to both the echo context and the request context
func SetRequestID(c echo.Context, requestID string) {
	ctx := WithRequestID(c.Request().Context(), requestID)
	c.Set(string(RequestIDKey), GetRequestID(ctx))
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestIDFromEcho returns the request ID of the current request
func RequestIDFromEcho(c echo.Context) string {
	if requestID, ok := c.Get(string(RequestIDKey)).(string); ok {
		return requestID
	}
	return GetRequestID(c.Request().Context())
}
