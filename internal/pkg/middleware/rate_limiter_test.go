package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/database"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitedServer(t *testing.T, limit int) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	e := echo.New()
	e.Use(IPRateLimiter("auth", limit, time.Minute, &database.RedisClient{Client: client}))
	e.POST("/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e, mr
}

func doLogin(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	e, mr := setupRateLimitedServer(t, 2)

	assert.Equal(t, http.StatusOK, doLogin(e, "10.0.0.1").Code)
	rec := doLogin(e, "10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = doLogin(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// other clients have their own budget
	assert.Equal(t, http.StatusOK, doLogin(e, "10.0.0.2").Code)

	// the window resets
	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, doLogin(e, "10.0.0.1").Code)
}

func TestRateLimiter_KeyFormat(t *testing.T) {
	e, mr := setupRateLimitedServer(t, 5)

	doLogin(e, "10.0.0.9")

	val, err := mr.Get("rate:limit:auth:10.0.0.9")
	assert.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestRateLimiter_RedisDownAllowsRequest(t *testing.T) {
	e, mr := setupRateLimitedServer(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusOK, doLogin(e, "10.0.0.1").Code)
}

func TestRateLimiter_CounterWithoutExpiryResets(t *testing.T) {
	e, mr := setupRateLimitedServer(t, 1)
	// left over from an increment whose EXPIRE never ran
	assert.NoError(t, mr.Set("rate:limit:auth:10.0.0.1", "1"))

	rec := doLogin(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, time.Minute, mr.TTL("rate:limit:auth:10.0.0.1"))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, doLogin(e, "10.0.0.1").Code)
}
