package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/jumbaa/internal/pkg/models"
)

const (
	testUserID  = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testHouseID = "9b2f3c1e-2d4a-4f1b-8a5e-3c6d7e8f9a0b"
)

func TestAddFavorite(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO favorites").
					WithArgs(testUserID, testHouseID, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Already saved",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("ON CONFLICT \\(user_id, house_id\\) DO NOTHING").
					WithArgs(testUserID, testHouseID, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "Unknown house",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO favorites").
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "favorites_house_id_fkey"})
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO favorites").
					WillReturnError(errors.New("connection reset"))
			},
			anyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupHouseRepoTest(t, testConfig(0), nil)
			tc.mockSetup(mock)

			err := repo.AddFavorite(context.Background(), testUserID, testHouseID)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, models.ErrNotFound)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRemoveFavorite(t *testing.T) {
	t.Run("Missing favorite is not an error", func(t *testing.T) {
		repo, mock := setupHouseRepoTest(t, testConfig(0), nil)
		mock.ExpectExec("DELETE FROM favorites WHERE user_id = \\$1 AND house_id = \\$2").
			WithArgs(testUserID, testHouseID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.RemoveFavorite(context.Background(), testUserID, testHouseID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := setupHouseRepoTest(t, testConfig(0), nil)
		mock.ExpectExec("DELETE FROM favorites").WillReturnError(errors.New("connection reset"))

		assert.Error(t, repo.RemoveFavorite(context.Background(), testUserID, testHouseID))
	})
}

func TestIsFavorite(t *testing.T) {
	repo, mock := setupHouseRepoTest(t, testConfig(0), nil)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testUserID, testHouseID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.IsFavorite(context.Background(), testUserID, testHouseID)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery("SELECT EXISTS").WillReturnError(errors.New("connection reset"))
	ok, err = repo.IsFavorite(context.Background(), testUserID, testHouseID)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavorites(t *testing.T) {
	repo, mock := setupHouseRepoTest(t, testConfig(0), nil)
	recent, earlier := newTestHouse("Saved today"), newTestHouse("Saved last week")

	rows := sqlmock.NewRows(houseRowColumns)
	addHouseRow(rows, recent)
	addHouseRow(rows, earlier)
	mock.ExpectQuery("FROM favorites f JOIN houses h (.+) ORDER BY f.created_at DESC").
		WithArgs(testUserID).
		WillReturnRows(rows)

	houses, err := repo.ListFavorites(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, houses, 2)
	assert.Equal(t, "Saved today", houses[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFavoritesByUser(t *testing.T) {
	repo, mock := setupHouseRepoTest(t, testConfig(0), nil)
	mock.ExpectExec("DELETE FROM favorites WHERE user_id = \\$1$").
		WithArgs(testUserID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteFavoritesByUser(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	mock.ExpectExec("DELETE FROM favorites").WillReturnError(errors.New("connection reset"))
	_, err = repo.DeleteFavoritesByUser(context.Background(), testUserID)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
