package services

import (
	"context"

	"github.com/court-finder/app/models"
)

// CourtRepository thao tác bulk trên collection courts
type CourtRepository interface {
	// DeleteAll xóa toàn bộ courts, trả về số document đã xóa
	DeleteAll(ctx context.Context) (int64, error)

	// InsertAll insert toàn bộ courts bằng một lệnh, trả về id theo thứ tự input
	InsertAll(ctx context.Context, courts []models.CourtRecord) ([]string, error)

	// Count đếm số courts hiện có
	Count(ctx context.Context) (int64, error)
}

// CourtIndexer đồng bộ courts sang search index
type CourtIndexer interface {
	IndexCourts(ids []string, courts []models.CourtRecord) (int, error)
	Clear() error
}

// CourtCacheInvalidator xóa các danh sách court app đã cache
type CourtCacheInvalidator interface {
	// Invalidate xóa cache, trả về số key đã xóa
	Invalidate(ctx context.Context) (int, error)

	// Close đóng kết nối (nếu cần)
	Close() error
}
