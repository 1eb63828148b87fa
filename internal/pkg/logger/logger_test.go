package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T, level string) (*AppLogger, *bytes.Buffer) {
	t.Helper()
	l, err := NewAppLogger(Config{Level: level, Service: "houses-service"})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestAppLogger_StructuredFields(t *testing.T) {
	l, buf := newBufferedLogger(t, "info")

	l.Info("House created", String("house_id", "h-1"), Int("bedrooms", 3), Err(errors.New("boom")))

	line := decodeLine(t, buf)
	assert.Equal(t, "House created", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "houses-service", line["service"])
	assert.Equal(t, "h-1", line["house_id"])
	assert.Equal(t, float64(3), line["bedrooms"])
	assert.Equal(t, "boom", line["error"])
	assert.Contains(t, line, "timestamp")
}

func TestAppLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferedLogger(t, "warn")

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestAppLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, buf := newBufferedLogger(t, "loud")

	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.NotZero(t, buf.Len())
}

func TestAppLogger_LogHTTPRequest(t *testing.T) {
	tests := []struct {
		status int
		level  string
		msg    string
	}{
		{200, "info", "Request processed"},
		{404, "warning", "Client error"},
		{503, "error", "Server error"},
	}

	for _, tt := range tests {
		l, buf := newBufferedLogger(t, "info")
		l.LogHTTPRequest("GET", "/houses", "10.0.0.1", "anonymous", "req-1", tt.status, 25*time.Millisecond, nil)

		line := decodeLine(t, buf)
		assert.Equal(t, tt.level, line["level"])
		assert.Equal(t, tt.msg, line["message"])
		assert.Equal(t, float64(tt.status), line["status"])
		assert.Equal(t, float64(25), line["latency_ms"])
	}
}

func TestInitAppLoggerFromConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "users.log")
	cfg := &models.Config{}
	cfg.App.Name = "users-service"
	cfg.Logger = models.LoggerConfig{Level: "debug", Type: "file", FilePath: path}

	l, err := InitAppLoggerFromConfig(cfg)
	require.NoError(t, err)
	defer l.Close()

	l.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Equal(t, path, l.GetFilePath())
}

func TestGlobalLogger(t *testing.T) {
	l, buf := newBufferedLogger(t, "info")
	SetGlobalLogger(l)
	defer SetGlobalLogger(nil)

	Info("global message", Bool("cached", true))

	line := decodeLine(t, buf)
	assert.Equal(t, "global message", line["message"])
	assert.Equal(t, true, line["cached"])
}
