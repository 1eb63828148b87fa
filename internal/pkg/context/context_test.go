package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		expected  func(string) bool
	}{
		{
			name:      "Valid request ID",
			requestID: "req-123-456",
			expected: func(result string) bool {
				return result == "req-123-456"
			},
		},
		{
			name:      "Empty request ID generates UUID",
			requestID: "",
			expected: func(result string) bool {
				_, err := uuid.Parse(result)
				return err == nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithRequestID(context.Background(), tt.requestID)
			result := GetRequestID(ctx)
			assert.True(t, tt.expected(result), "Request ID validation failed: %s", result)
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGetSession(t *testing.T) {
	t.Run("missing session is anonymous", func(t *testing.T) {
		session := GetSession(context.Background())
		assert.Equal(t, models.Anonymous, session.Kind)
		assert.False(t, session.IsAuthenticated())
	})

	t.Run("stored session is returned", func(t *testing.T) {
		want := models.AuthenticatedSession("user-1", "token-1", 1700000000)
		ctx := WithSession(context.Background(), want)

		got := GetSession(ctx)
		assert.Equal(t, want, got)
		assert.True(t, got.IsAuthenticated())
	})

	t.Run("wrong value type is ignored", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, "user-1")
		assert.Equal(t, models.Anonymous, GetSession(ctx).Kind)
	})
}
