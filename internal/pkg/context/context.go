package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// SessionKey is the key for the authentication session in context
	SessionKey ContextKey = "session"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithSession stores the session of the current request
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSession returns the session stored in ctx. A context without one is anonymous.
func GetSession(ctx context.Context) models.Session {
	if session, ok := ctx.Value(SessionKey).(models.Session); ok {
		return session
	}
	return models.AnonymousSession()
}
