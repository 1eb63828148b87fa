package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	userID := uuid.New()
	session := models.AuthenticatedSession(userID.String(), "token-1", 1900000000)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUserUC := mocks.NewMockUserUC(ctrl)
		mockUserUC.EXPECT().GetProfile(gomock.Any(), userID.String()).
			Return(&models.User{ID: userID, Email: "amina@example.com", PasswordHash: "secret-hash"}, nil)

		c, rec := newJSONContext(http.MethodGet, "/users/me", "")
		appctx.SetSession(c, session)

		require.NoError(t, NewUserHandler(mockUserUC).GetProfile(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret-hash")
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "amina@example.com", data["email"])
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, rec := newJSONContext(http.MethodGet, "/users/me", "")

		require.NoError(t, NewUserHandler(mocks.NewMockUserUC(ctrl)).GetProfile(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUserUC := mocks.NewMockUserUC(ctrl)
		mockUserUC.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Return(nil, models.ErrNotFound)

		c, rec := newJSONContext(http.MethodGet, "/users/me", "")
		appctx.SetSession(c, session)

		require.NoError(t, NewUserHandler(mockUserUC).GetProfile(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
	})
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	session := models.AuthenticatedSession("user-1", "token-1", 1900000000)
	mockUserUC.EXPECT().UpdateProfile(gomock.Any(), "user-1", &models.ProfileUpdateRequest{FirstName: "Amina", LastName: "Otieno"}).
		Return(&models.User{FirstName: "Amina", LastName: "Otieno"}, nil)

	c, rec := newJSONContext(http.MethodPut, "/users/me", `{"first_name":"Amina","last_name":"Otieno"}`)
	appctx.SetSession(c, session)

	require.NoError(t, NewUserHandler(mockUserUC).UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "Otieno", data["last_name"])
}

func TestUpdateProfile_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	mockUserUC.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.NewDomainError(models.ErrValidation, "first_name or last_name is required"))

	c, rec := newJSONContext(http.MethodPut, "/users/me", `{}`)
	appctx.SetSession(c, models.AuthenticatedSession("user-1", "token-1", 1900000000))

	require.NoError(t, NewUserHandler(mockUserUC).UpdateProfile(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	session := models.AuthenticatedSession("user-1", "token-1", 1900000000)
	mockUserUC.EXPECT().DeleteAccount(gomock.Any(), session).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/users/me", "")
	appctx.SetSession(c, session)

	require.NoError(t, NewUserHandler(mockUserUC).DeleteAccount(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Account deleted successfully", decodeBody(t, rec)["message"])
}
