// Package cache provides the redis-backed resolver cache mapping short
// codes to their link records.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ddegtyarev/linkpulse/internal/storage"
)

const keyPrefix = "link:"

type Cache struct {
	rdb *redis.Client
}

func ConnectRedis(addr, password string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{rdb: rdb}, nil
}

// GetLink returns the cached record for a code, or (nil, nil) on a miss.
func (c *Cache) GetLink(ctx context.Context, code string) (*storage.LinkRecord, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var link storage.LinkRecord
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, err
	}

	return &link, nil
}

func (c *Cache) SetLink(ctx context.Context, link *storage.LinkRecord, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, keyPrefix+link.Code, data, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, code string) error {
	return c.rdb.Del(ctx, keyPrefix+code).Err()
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
