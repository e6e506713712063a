package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSource reads the dataset an external sync job publishes as JSON text
// under a single key.
type RedisSource struct {
	client stringGetter
	key    string
}

func NewRedisSource(client *redis.Client, key string) *RedisSource {
	return &RedisSource{client: client, key: key}
}

func (rs *RedisSource) Fetch(ctx context.Context) ([]reading.Record, error) {
	data, err := rs.client.Get(ctx, rs.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("dataset key %s not found in redis", rs.key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from redis: %w", rs.key, err)
	}
	return Decode(data)
}
