package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestSetSession(t *testing.T) {
	c := newEchoContext()
	session := models.AuthenticatedSession("user-1", "token-1", 1700000000)

	SetSession(c, session)

	assert.Equal(t, session, SessionFromEcho(c))
	assert.Equal(t, session, GetSession(c.Request().Context()))
	assert.Equal(t, "user-1", c.Get("user_id"))
}

func TestSetSession_Anonymous(t *testing.T) {
	c := newEchoContext()

	SetSession(c, models.AnonymousSession())

	assert.Equal(t, models.Anonymous, SessionFromEcho(c).Kind)
	assert.Nil(t, c.Get("user_id"))
}

func TestSessionFromEcho_Default(t *testing.T) {
	assert.Equal(t, models.Anonymous, SessionFromEcho(newEchoContext()).Kind)
}

func TestSetRequestID(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-1")

	assert.Equal(t, "req-1", RequestIDFromEcho(c))
	assert.Equal(t, "req-1", GetRequestID(c.Request().Context()))
}

func TestSetRequestID_Generated(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "")

	assert.NotEmpty(t, RequestIDFromEcho(c))
	assert.Equal(t, RequestIDFromEcho(c), GetRequestID(c.Request().Context()))
}
