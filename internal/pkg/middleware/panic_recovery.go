package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the stack trace and
// answers with a 500 envelope
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				userID := "anonymous"
				if session := appctx.SessionFromEcho(c); session.IsAuthenticated() {
					userID = session.UserID
				}

				appLogger.Error("Panic recovered during request processing",
					logger.String("panic_value", fmt.Sprintf("%v", r)),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("client_ip", c.RealIP()),
					logger.String("user_id", userID),
					logger.String("request_id", appctx.RequestIDFromEcho(c)),
				)

				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request")
				}
			}()

			return next(c)
		}
	}
}
