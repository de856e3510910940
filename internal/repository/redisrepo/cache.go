package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache: okuma ağırlıklı uçlar için JSON önbelleği.
// Redis yapılandırılmamışsa Nop kullanılır.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Del(ctx context.Context, keys ...string) error
}

type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) Cache {
	return &redisCache{rdb: rdb, ttl: ttl}
}

func (c *redisCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) SetJSON(ctx context.Context, key string, value any) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, valueJSON, c.ttl).Err()
}

func (c *redisCache) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

type nopCache struct{}

func Nop() Cache { return nopCache{} }

func (nopCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (nopCache) SetJSON(context.Context, string, any) error         { return nil }
func (nopCache) Del(context.Context, ...string) error               { return nil }
