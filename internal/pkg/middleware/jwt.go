package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	jwtpkg "github.com/piresc/jumbaa/internal/pkg/jwt"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
)

// JWTAuthMiddleware creates a middleware that rejects requests without a valid bearer token
func JWTAuthMiddleware(config models.JWTConfig, revocations jwtpkg.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, present, ok := bearerToken(c)
			if !present {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			session, msg := authenticate(c, tokenString, config, revocations)
			if msg != "" {
				return utils.UnauthorizedResponse(c, msg)
			}

			appctx.SetSession(c, session)
			return next(c)
		}
	}
}

// OptionalJWTMiddleware authenticates the request when a bearer token is sent and
// marks it anonymous otherwise. A token that is sent but invalid is still rejected.
func OptionalJWTMiddleware(config models.JWTConfig, revocations jwtpkg.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, present, ok := bearerToken(c)
			if !present {
				appctx.SetSession(c, models.AnonymousSession())
				return next(c)
			}
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			session, msg := authenticate(c, tokenString, config, revocations)
			if msg != "" {
				return utils.UnauthorizedResponse(c, msg)
			}

			appctx.SetSession(c, session)
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c echo.Context) (token string, present bool, ok bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", true, false
	}
	return parts[1], true, true
}

// authenticate validates the token and checks it has not been revoked. A non-empty
// message means the request must be rejected.
func authenticate(c echo.Context, tokenString string, config models.JWTConfig, revocations jwtpkg.RevocationStore) (models.Session, string) {
	claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
	if err != nil {
		return models.Session{}, "Invalid token"
	}

	if revocations != nil && claims.ID != "" {
		revoked, err := revocations.IsRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			// fail closed: a token we cannot check is not trusted
			logger.Error("Failed to check token revocation",
				logger.String("request_id", appctx.RequestIDFromEcho(c)),
				logger.ErrorField(err))
			return models.Session{}, "Unable to verify token"
		}
		if revoked {
			return models.Session{}, "Token has been revoked"
		}
	}

	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}
	return models.AuthenticatedSession(claims.UserID, claims.ID, expiresAt), ""
}
