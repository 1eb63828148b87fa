package server

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) *logger.AppLogger {
	t.Helper()
	l, err := logger.NewAppLogger(logger.Config{Level: "error"})
	require.NoError(t, err)
	l.SetOutput(io.Discard)
	return l
}

func TestNewGracefulServer_AppliesConfig(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, quietLogger(t), models.ServerConfig{
		Host:            "127.0.0.1",
		Port:            8081,
		ReadTimeout:     5,
		WriteTimeout:    10,
		ShutdownTimeout: 3,
	})

	assert.Equal(t, "127.0.0.1:8081", gs.addr)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, e.Server.WriteTimeout)
	assert.Equal(t, 3*time.Second, gs.shutdownTimeout)
}

func TestNewGracefulServer_DefaultShutdownTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), quietLogger(t), models.ServerConfig{Port: 0})
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	gs := NewGracefulServer(e, quietLogger(t), models.ServerConfig{Host: "127.0.0.1", Port: 0})

	closed := make(chan struct{})
	gs.OnShutdown(func(ctx context.Context) error {
		close(closed)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	// wait for the listener before cancelling
	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	select {
	case <-closed:
	default:
		t.Fatal("shutdown hook was not called")
	}
}

func TestShutdownManager_ReverseOrderAndFirstError(t *testing.T) {
	sm := NewShutdownManager(quietLogger(t))
	var order []int
	failure := errors.New("close failed")

	sm.Register(func(ctx context.Context) error { order = append(order, 1); return nil })
	sm.Register(func(ctx context.Context) error { order = append(order, 2); return failure })
	sm.Register(func(ctx context.Context) error { order = append(order, 3); return errors.New("later") })

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []int{3, 2, 1}, order)
	assert.EqualError(t, err, "later")
}
