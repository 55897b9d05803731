package redis_cache

import (
	"context"
	"time"

	"checkout-gateway/utils/configs"

	"github.com/redis/go-redis/v9"
)

const tokenKey = "gateway:access_token"

// TokenCache stores the formatted bearer token with a TTL so repeated
// gateway calls skip the login round trip.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(conf configs.RedisConfig) *TokenCache {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Address,
		Password: conf.Password,
		DB:       conf.DB,
	})

	return &TokenCache{client: client}
}

func (t *TokenCache) Get(ctx context.Context) (string, error) {
	token, err := t.client.Get(ctx, tokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

func (t *TokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	return t.client.Set(ctx, tokenKey, token, ttl).Err()
}
