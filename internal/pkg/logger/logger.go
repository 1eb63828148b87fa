package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our custom logger that supports multiple outputs
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewAppLogger creates a new application logger
func NewAppLogger(config Config) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:  logger,
		service: config.Service,
	}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// InitAppLoggerFromConfig builds the logger from the service configuration
func InitAppLoggerFromConfig(configs *models.Config) (*AppLogger, error) {
	cfg := Config{
		Level:   configs.Logger.Level,
		Service: configs.App.Name,
	}
	if configs.Logger.Type == "file" {
		cfg.FilePath = configs.Logger.FilePath
	}
	return NewAppLogger(cfg)
}

// setupFileOutput writes to both stdout and the log file
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// entry returns a log entry carrying the service name and the given fields
func (al *AppLogger) entry(fields []Field) *logrus.Entry {
	data := logrus.Fields{}
	if al.service != "" {
		data["service"] = al.service
	}
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return al.Logger.WithFields(data)
}

func (al *AppLogger) Debug(msg string, fields ...Field) { al.entry(fields).Debug(msg) }
func (al *AppLogger) Info(msg string, fields ...Field)  { al.entry(fields).Info(msg) }
func (al *AppLogger) Warn(msg string, fields ...Field)  { al.entry(fields).Warn(msg) }
func (al *AppLogger) Error(msg string, fields ...Field) { al.entry(fields).Error(msg) }
func (al *AppLogger) Fatal(msg string, fields ...Field) { al.entry(fields).Fatal(msg) }

// WithRequestContext adds request context fields
func (al *AppLogger) WithRequestContext(requestID, userID, method, path string) *logrus.Entry {
	return al.entry([]Field{
		String("request_id", requestID),
		String("user_id", userID),
		String("method", method),
		String("path", path),
	})
}

// LogHTTPRequest logs HTTP request with all relevant context
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.entry([]Field{
		Int("status", statusCode),
		String("latency", latency.String()),
		Int64("latency_ms", latency.Milliseconds()),
		String("client_ip", clientIP),
		String("method", method),
		String("path", path),
		String("user_id", userID),
		String("request_id", requestID),
	})
	if err != nil {
		entry = entry.WithError(err)
	}

	// Log with appropriate level based on status code
	switch {
	case statusCode >= 500:
		entry.Error("Server error")
	case statusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}

// GetFilePath returns the current log file path
func (al *AppLogger) GetFilePath() string {
	return al.filePath
}
