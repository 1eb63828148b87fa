package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/jumbaa/internal/pkg/constants"
	"github.com/piresc/jumbaa/internal/pkg/database"
)

//go:generate mockgen -destination=../../../services/users/mocks/mock_revocation.go -package=mocks github.com/piresc/jumbaa/internal/pkg/jwt RevocationStore

// RevocationStore remembers signed-out tokens until they would have expired
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt int64) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisRevocationStore struct {
	redisClient *database.RedisClient
}

// NewRevocationStore creates a Redis backed revocation store
func NewRevocationStore(redisClient *database.RedisClient) RevocationStore {
	return &redisRevocationStore{redisClient: redisClient}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt int64) error {
	ttl := time.Until(time.Unix(expiresAt, 0))
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}

	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	if err := s.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	revoked, err := s.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}
