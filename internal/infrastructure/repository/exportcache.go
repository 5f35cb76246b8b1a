package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

const exportKeyPrefix = "export:"

// ExportCache keeps rendered export payloads in redis. Entries are keyed
// by commit and format; commits are immutable so entries never expire.
type ExportCache struct {
	rdb *redis.Client
}

func NewExportCache(rdb *redis.Client) *ExportCache {
	return &ExportCache{rdb: rdb}
}

func (c *ExportCache) Get(ctx context.Context, key string) (string, error) {
	payload, err := c.rdb.Get(ctx, exportKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.NotFoundError{Resource: "export " + key}
	}
	if err != nil {
		return "", err
	}
	return payload, nil
}

func (c *ExportCache) Set(ctx context.Context, key, payload string) error {
	return c.rdb.Set(ctx, exportKeyPrefix+key, payload, 0).Err()
}
