package usecase

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/services/users/mocks"
	"golang.org/x/crypto/bcrypt"
)

type testDeps struct {
	repo        *mocks.MockUserRepo
	gw          *mocks.MockUserGW
	revocations *mocks.MockRevocationStore
}

func newTestUC(t *testing.T) (*UserUC, testDeps) {
	ctrl := gomock.NewController(t)

	deps := testDeps{
		repo:        mocks.NewMockUserRepo(ctrl),
		gw:          mocks.NewMockUserGW(ctrl),
		revocations: mocks.NewMockRevocationStore(ctrl),
	}

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}

	uc := NewUserUC(deps.repo, deps.gw, deps.revocations, cfg)
	uc.hashCost = bcrypt.MinCost
	return uc, deps
}
