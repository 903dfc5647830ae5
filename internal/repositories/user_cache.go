package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
)

// UserCacheRepository caches username to user id lookups in Redis.
// Usernames never change owner, so entries only expire by TTL.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a new repository instance with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(username string) string {
	return fmt.Sprintf("user_id:%s", username)
}

// GetUserID returns the cached id for username.
func (r *UserCacheRepository) GetUserID(ctx context.Context, username string) (uuid.UUID, error) {
	key := userCacheKey(username)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return uuid.Nil, fmt.Errorf("user id not found in cache for %s", username)
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", userID,
		"error", err,
	)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// SetUserID caches the id for username with expiration
func (r *UserCacheRepository) SetUserID(ctx context.Context, username string, userID uuid.UUID) error {
	key := userCacheKey(username)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", userID,
		"result", "ok",
		"error", err,
	)

	return err
}
