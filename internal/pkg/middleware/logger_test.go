package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*logger.AppLogger, *bytes.Buffer) {
	t.Helper()
	appLogger, err := logger.NewAppLogger(logger.Config{Level: "debug", Service: "test"})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	appLogger.SetOutput(buf)
	return appLogger, buf
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel string
		wantCode  int
	}{
		{
			name:      "success is info",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "info",
			wantCode:  http.StatusOK,
		},
		{
			name:      "client error is warning",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantLevel: "warning",
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "server error is error",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) },
			wantLevel: "error",
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appLogger, buf := newTestLogger(t)
			e := echo.New()
			e.Use(RequestIDMiddleware(), LoggerMiddleware(appLogger))
			e.GET("/houses", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/houses?q=kili", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-42")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))

			var line map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "/houses?q=kili", line["path"])
			assert.Equal(t, "req-42", line["request_id"])
			assert.Equal(t, "anonymous", line["user_id"])
			assert.Equal(t, float64(tt.wantCode), line["status"])
		})
	}
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
