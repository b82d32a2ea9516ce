package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

const reportKeyPrefix = "interview:report:"

// RedisStore is the Redis-backed ReportStore
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// SaveReport stores a report payload with expiration
func (rs *RedisStore) SaveReport(ctx context.Context, id string, payload []byte, ttl time.Duration) error {
	if err := rs.client.Set(ctx, reportKeyPrefix+id, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}
	return nil
}

// GetReport retrieves a report payload by ID
func (rs *RedisStore) GetReport(ctx context.Context, id string) ([]byte, error) {
	payload, err := rs.client.Get(ctx, reportKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return payload, nil
}

// Close releases the underlying Redis connection
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
