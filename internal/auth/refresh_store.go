package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "articles:refresh:"

// RefreshStore tracks live refresh token ids in Redis. A token id that is
// absent from the store has been revoked or already rotated.
type RefreshStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRefreshStore constructs a RefreshStore.
func NewRefreshStore(client *redis.Client, ttl time.Duration) *RefreshStore {
	return &RefreshStore{client: client, ttl: ttl}
}

// Put registers a freshly issued token id.
func (s *RefreshStore) Put(ctx context.Context, id string, userID int64) error {
	return s.client.Set(ctx, refreshKeyPrefix+id, strconv.FormatInt(userID, 10), s.ttl).Err()
}

// Take consumes the token id, returning false when it was already revoked
// or rotated. The delete doubles as the rotation step so a refresh token
// is good for exactly one exchange.
func (s *RefreshStore) Take(ctx context.Context, id string) (bool, error) {
	deleted, err := s.client.Del(ctx, refreshKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// Revoke drops the token id. Revoking an unknown id is not an error.
func (s *RefreshStore) Revoke(ctx context.Context, id string) error {
	return s.client.Del(ctx, refreshKeyPrefix+id).Err()
}
