package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	scanCount = 500
	delChunk  = 500
)

// RedisCourtCache xóa các key court mà API của app cache trong Redis (prefix "courts:")
type RedisCourtCache struct {
	client redis.UniversalClient
	logger *zap.Logger
	prefix string
}

// NewRedisCourtCache parse URL, ping và tạo RedisCourtCache
func NewRedisCourtCache(redisURL, prefix string, logger *zap.Logger) (*RedisCourtCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("lỗi parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("không thể kết nối Redis: %w", err)
	}

	return newRedisCourtCache(client, prefix, logger), nil
}

func newRedisCourtCache(client redis.UniversalClient, prefix string, logger *zap.Logger) *RedisCourtCache {
	if prefix == "" {
		prefix = "courts:"
	}
	return &RedisCourtCache{
		client: client,
		logger: logger,
		prefix: prefix,
	}
}

// Pattern pattern SCAN của các key court
func (rc *RedisCourtCache) Pattern() string {
	return rc.prefix + "*"
}

// Invalidate xóa toàn bộ key theo prefix. Dùng SCAN thay vì KEYS để không block Redis.
func (rc *RedisCourtCache) Invalidate(ctx context.Context) (int, error) {
	var keys []string
	iter := rc.client.Scan(ctx, 0, rc.Pattern(), scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("lỗi scan keys: %w", err)
	}

	deleted := 0
	for i := 0; i < len(keys); i += delChunk {
		end := i + delChunk
		if end > len(keys) {
			end = len(keys)
		}
		n, err := rc.client.Del(ctx, keys[i:end]...).Result()
		if err != nil {
			return deleted, fmt.Errorf("lỗi xóa keys: %w", err)
		}
		deleted += int(n)
	}

	rc.logger.Info("Invalidated court cache",
		zap.String("pattern", rc.Pattern()),
		zap.Int("keys_deleted", deleted))
	return deleted, nil
}

// Close đóng kết nối Redis
func (rc *RedisCourtCache) Close() error {
	return rc.client.Close()
}
