package services

import (
	"context"
	"fmt"
	"time"

	"github.com/court-finder/helpers/utils"
	"github.com/court-finder/internal/catalog"
	"go.uber.org/zap"
)

// CourtAdminService purge/seed collection courts.
// indexer và cache là optional (nil = tắt).
type CourtAdminService struct {
	repo     CourtRepository
	indexer  CourtIndexer
	cache    CourtCacheInvalidator
	catalog  *catalog.Catalog
	logger   *zap.Logger
	newRunID func() string
}

// PurgeResult kết quả purge
type PurgeResult struct {
	RunID                string `json:"run_id"`
	DeletedCount         int64  `json:"deleted_count"`
	IndexCleared         bool   `json:"index_cleared"`
	CacheKeysInvalidated int    `json:"cache_keys_invalidated"`
	ProcessingTimeMs     int64  `json:"processing_time_ms"`
}

// SeedResult kết quả seed
type SeedResult struct {
	RunID                string           `json:"run_id"`
	Generated            int              `json:"generated"`
	Inserted             int              `json:"inserted"`
	Indexed              int              `json:"indexed"`
	CacheKeysInvalidated int              `json:"cache_keys_invalidated"`
	Summary              *catalog.Summary `json:"summary"`
	ProcessingTimeMs     int64            `json:"processing_time_ms"`
}

// ResetResult purge rồi seed
type ResetResult struct {
	Purge *PurgeResult `json:"purge"`
	Seed  *SeedResult  `json:"seed"`
}

// CourtStats thống kê hiện tại
type CourtStats struct {
	StoredCourts int64            `json:"stored_courts"`
	Catalog      *catalog.Summary `json:"catalog"`
}

// NewCourtAdminService tạo mới CourtAdminService
func NewCourtAdminService(repo CourtRepository, indexer CourtIndexer, cache CourtCacheInvalidator, cat *catalog.Catalog, logger *zap.Logger) *CourtAdminService {
	return &CourtAdminService{
		repo:     repo,
		indexer:  indexer,
		cache:    cache,
		catalog:  cat,
		logger:   logger,
		newRunID: utils.GenerateRunID,
	}
}

// Purge xóa toàn bộ courts bằng một lệnh bulk.
// Lỗi của search index / cache chỉ log warning, vì dữ liệu đã bị xóa.
func (s *CourtAdminService) Purge(ctx context.Context) (*PurgeResult, error) {
	startTime := time.Now()
	runID := s.newRunID()
	logger := s.logger.With(zap.String("run_id", utils.ShortRunID(runID)))

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge courts: %w", err)
	}

	result := &PurgeResult{
		RunID:        runID,
		DeletedCount: deleted,
	}

	if s.indexer != nil {
		if err := s.indexer.Clear(); err != nil {
			logger.Warn("Lỗi xóa courts search index", zap.Error(err))
		} else {
			result.IndexCleared = true
		}
	}

	result.CacheKeysInvalidated = s.invalidateCache(ctx, logger)
	result.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	logger.Info("Purge courts completed",
		zap.Int64("deleted_count", deleted),
		zap.Bool("index_cleared", result.IndexCleared),
		zap.Int64("processing_time_ms", result.ProcessingTimeMs))

	return result, nil
}

// Seed sinh courts từ catalog và insert bằng một lệnh bulk.
// Không đụng tới document có sẵn, không dedupe.
func (s *CourtAdminService) Seed(ctx context.Context) (*SeedResult, error) {
	startTime := time.Now()
	runID := s.newRunID()
	logger := s.logger.With(zap.String("run_id", utils.ShortRunID(runID)))

	courts := catalog.Generate(s.catalog)
	logger.Info("Generated courts", zap.Int("count", len(courts)))

	ids, err := s.repo.InsertAll(ctx, courts)
	if err != nil {
		return nil, fmt.Errorf("seed courts: %w", err)
	}

	result := &SeedResult{
		RunID:     runID,
		Generated: len(courts),
		Inserted:  len(ids),
		Summary:   catalog.Summarize(s.catalog, courts),
	}

	if s.indexer != nil {
		indexed, err := s.indexer.IndexCourts(ids, courts)
		if err != nil {
			logger.Warn("Lỗi index courts vào Meilisearch", zap.Error(err))
		}
		result.Indexed = indexed
	}

	result.CacheKeysInvalidated = s.invalidateCache(ctx, logger)
	result.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	logger.Info("Seed courts completed",
		zap.Int("inserted", result.Inserted),
		zap.Int("indexed", result.Indexed),
		zap.Int64("processing_time_ms", result.ProcessingTimeMs))

	return result, nil
}

// Reset purge rồi seed. Collection chỉ còn đúng bộ courts vừa sinh.
func (s *CourtAdminService) Reset(ctx context.Context) (*ResetResult, error) {
	purge, err := s.Purge(ctx)
	if err != nil {
		return nil, err
	}

	seed, err := s.Seed(ctx)
	if err != nil {
		return &ResetResult{Purge: purge}, err
	}

	return &ResetResult{Purge: purge, Seed: seed}, nil
}

// Preview sinh courts và tính summary mà không ghi database (dry run)
func (s *CourtAdminService) Preview() *catalog.Summary {
	return catalog.Summarize(s.catalog, catalog.Generate(s.catalog))
}

// Stats số courts trong database và coverage của catalog
func (s *CourtAdminService) Stats(ctx context.Context) (*CourtStats, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats courts: %w", err)
	}

	return &CourtStats{
		StoredCourts: count,
		Catalog:      s.Preview(),
	}, nil
}

func (s *CourtAdminService) invalidateCache(ctx context.Context, logger *zap.Logger) int {
	if s.cache == nil {
		return 0
	}
	n, err := s.cache.Invalidate(ctx)
	if err != nil {
		logger.Warn("Lỗi invalidate court cache", zap.Error(err))
	}
	return n
}
