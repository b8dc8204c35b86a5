// Package bootstrap nối config, MongoDB, Redis, Meilisearch và catalog
// thành CourtAdminService dùng chung cho các entry point.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/court-finder/app/config"
	"github.com/court-finder/app/services"
	"github.com/court-finder/internal/catalog"
	"github.com/court-finder/internal/search"
	"github.com/court-finder/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Runtime giữ các kết nối đã mở, gọi Close khi xong
type Runtime struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Store   *store.CourtStore
	Service *services.CourtAdminService

	client *mongo.Client
	cache  *services.RedisCourtCache
	logger *zap.Logger
}

// LoadCatalog đọc catalog nhúng, hoặc file YAML nếu path khác rỗng
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("đọc catalog %s: %w", path, err)
	}
	return catalog.Parse(data)
}

// Open kết nối MongoDB và các dịch vụ optional.
// Redis / Meilisearch lỗi thì chỉ warning và chạy tiếp không có chúng.
func Open(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, logger *zap.Logger) (*Runtime, error) {
	client, err := store.Connect(ctx, cfg.MongoURL, cfg.MongoTimeout, logger)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Config:  cfg,
		Catalog: cat,
		Store:   store.NewCourtStore(client.Database(cfg.DBName), cfg.CourtsCollection, logger),
		client:  client,
		logger:  logger,
	}

	var cache services.CourtCacheInvalidator
	if cfg.RedisEnabled() {
		redisCache, err := services.NewRedisCourtCache(cfg.RedisURL, cfg.RedisPrefix, logger)
		if err != nil {
			logger.Warn("Redis không khả dụng, bỏ qua invalidate cache", zap.Error(err))
		} else {
			rt.cache = redisCache
			cache = redisCache
		}
	}

	var indexer services.CourtIndexer
	if cfg.MeiliEnabled() {
		courtIndex, err := search.NewCourtIndex(search.IndexConfig{
			Host:      cfg.MeiliURL,
			APIKey:    cfg.MeiliKey,
			IndexName: cfg.MeiliIndex,
		}, logger)
		if err == nil {
			err = courtIndex.Configure()
		}
		if err != nil {
			logger.Warn("Meilisearch không khả dụng, bỏ qua search index", zap.Error(err))
		} else {
			indexer = courtIndex
		}
	}

	rt.Service = services.NewCourtAdminService(rt.Store, indexer, cache, cat, logger)

	logger.Info("Court admin ready",
		zap.String("database", cfg.DBName),
		zap.String("collection", rt.Store.CollectionName()),
		zap.Bool("redis", cache != nil),
		zap.Bool("meilisearch", indexer != nil))

	return rt, nil
}

// Close đóng Redis và ngắt kết nối MongoDB
func (rt *Runtime) Close() {
	if rt.cache != nil {
		if err := rt.cache.Close(); err != nil {
			rt.logger.Warn("Lỗi đóng Redis", zap.Error(err))
		}
	}
	store.Disconnect(rt.client, rt.logger)
}
