package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/suggestbox/suggestbox/internal/modules/model"
)

const tokenKeyPrefix = "suggestbox:token:"

// TokenCache stores tokens by key. Tokens never change after creation, so
// entries only leave through the TTL or an explicit eviction on project delete.
type TokenCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenCache(rdb *redis.Client, ttl time.Duration) *TokenCache {
	return &TokenCache{rdb: rdb, ttl: ttl}
}

func (c *TokenCache) Get(ctx context.Context, key string) (*model.Token, error) {
	b, err := c.rdb.Get(ctx, tokenKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var t model.Token
	if err := sonic.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TokenCache) Set(ctx context.Context, t *model.Token) error {
	b, err := sonic.Marshal(t)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, tokenKeyPrefix+t.Key, b, c.ttl).Err()
}

func (c *TokenCache) Evict(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = tokenKeyPrefix + k
	}
	return c.rdb.Del(ctx, full...).Err()
}
