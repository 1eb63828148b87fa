package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   models.DatabaseConfig
		expected string
	}{
		{
			name: "local",
			config: models.DatabaseConfig{
				Host: "localhost", Port: 5432, Username: "jumbaa", Password: "secret",
				Database: "jumbaa", SSLMode: "disable",
			},
			expected: "host=localhost port=5432 user=jumbaa password=secret dbname=jumbaa sslmode=disable",
		},
		{
			name: "ssl enabled",
			config: models.DatabaseConfig{
				Host: "prod-db.example.com", Port: 6432, Username: "produser", Password: "p@ss",
				Database: "listings", SSLMode: "require",
			},
			expected: "host=prod-db.example.com port=6432 user=produser password=p@ss dbname=listings sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.config))
		})
	}
}

func TestPostgresClient_GetDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	client := NewPostgresClientFromDB(sqlxDB)

	assert.Equal(t, sqlxDB, client.GetDB())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Ping(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, client.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
	mock.ExpectClose()

	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
