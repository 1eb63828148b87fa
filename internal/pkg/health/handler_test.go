package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	e := echo.New()
	RegisterHealthEndpoints(e, "houses", nil)

	rec := serve(e, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "houses", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.False(t, info.ServerTime.IsZero())
}

func TestHealthEndpoints_Healthy(t *testing.T) {
	hs := NewHealthService()
	hs.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
	e := echo.New()
	RegisterHealthEndpoints(e, "users", hs)

	assert.Equal(t, http.StatusOK, serve(e, "/healthz").Code)
	assert.Equal(t, "OK", serve(e, "/healthz").Body.String())

	rec := serve(e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "users", resp.Service)
	assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)

	rec = serve(e, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ready"`)
}

func TestHealthEndpoints_Unhealthy(t *testing.T) {
	hs := NewHealthService()
	hs.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
	hs.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }))
	e := echo.New()
	RegisterHealthEndpoints(e, "houses", hs)

	rec := serve(e, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "Service not ready: redis")

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(serve(e, "/health").Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
	assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)

	// liveness does not depend on other services
	assert.Equal(t, http.StatusOK, serve(e, "/healthz").Code)
}

func TestRedisHealthChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer client.Close()

	checker := NewRedisHealthChecker(client)
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestNilClientsAreSkipped(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, NewPostgresHealthChecker(nil).CheckHealth(ctx))
	assert.NoError(t, NewRedisHealthChecker(nil).CheckHealth(ctx))
	assert.NoError(t, NewNSQHealthChecker(nil).CheckHealth(ctx))
}
