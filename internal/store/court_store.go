package store

import (
	"context"
	"fmt"

	"github.com/court-finder/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultCollection tên collection chứa court records
const DefaultCollection = "courts"

// CourtStore truy cập collection courts. Mỗi thao tác là một lệnh bulk duy nhất.
type CourtStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewCourtStore tạo CourtStore trên collection name (rỗng = "courts")
func NewCourtStore(db *mongo.Database, name string, logger *zap.Logger) *CourtStore {
	if name == "" {
		name = DefaultCollection
	}
	return &CourtStore{
		collection: db.Collection(name),
		logger:     logger,
	}
}

// CollectionName tên collection đang dùng
func (s *CourtStore) CollectionName() string {
	return s.collection.Name()
}

// DeleteAll xóa toàn bộ document (filter rỗng), trả về số document đã xóa
func (s *CourtStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("lỗi xóa courts: %w", err)
	}

	s.logger.Info("Deleted courts",
		zap.String("collection", s.collection.Name()),
		zap.Int64("deleted_count", result.DeletedCount))

	return result.DeletedCount, nil
}

// InsertAll insert toàn bộ courts bằng một lệnh InsertMany.
// Trả về ObjectID (hex) theo đúng thứ tự input. Không dedupe, không retry.
func (s *CourtStore) InsertAll(ctx context.Context, courts []models.CourtRecord) ([]string, error) {
	if len(courts) == 0 {
		return nil, nil
	}

	documents := make([]interface{}, len(courts))
	for i, court := range courts {
		documents[i] = court
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, fmt.Errorf("lỗi insert courts: %w", err)
	}

	ids := make([]string, 0, len(result.InsertedIDs))
	for _, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid.Hex())
			continue
		}
		ids = append(ids, fmt.Sprint(id))
	}

	s.logger.Info("Inserted courts",
		zap.String("collection", s.collection.Name()),
		zap.Int("inserted_count", len(ids)))

	return ids, nil
}

// Count đếm số document hiện có
func (s *CourtStore) Count(ctx context.Context) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("lỗi đếm courts: %w", err)
	}
	return count, nil
}
