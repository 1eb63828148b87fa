package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	"github.com/piresc/jumbaa/internal/pkg/logger"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			userID := "anonymous"
			if session := appctx.SessionFromEcho(c); session.IsAuthenticated() {
				userID = session.UserID
			}

			appLogger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				userID,
				appctx.RequestIDFromEcho(c),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			appctx.SetRequestID(c, c.Request().Header.Get(echo.HeaderXRequestID))
			c.Response().Header().Set(echo.HeaderXRequestID, appctx.RequestIDFromEcho(c))

			return next(c)
		}
	}
}
