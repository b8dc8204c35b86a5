package search

import (
	"errors"
	"fmt"

	"github.com/court-finder/app/models"
	ms "github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
)

const defaultBatchSize = 1000

// IndexConfig cấu hình Meilisearch cho court index
type IndexConfig struct {
	Host      string
	APIKey    string
	IndexName string
	BatchSize int
}

// GeoPoint định dạng _geo của Meilisearch
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CourtDocument document được index, id = ObjectID hex của court trong MongoDB
type CourtDocument struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Hours          string   `json:"hours"`
	PhoneNumber    string   `json:"phoneNumber"`
	Rating         float64  `json:"rating"`
	AveragePlayers int      `json:"averagePlayers"`
	Geo            GeoPoint `json:"_geo"`
}

// CourtIndex mirror collection courts sang Meilisearch
type CourtIndex struct {
	index     documentIndex
	name      string
	batchSize int
	logger    *zap.Logger
}

// NewCourtIndex kết nối Meilisearch và trả về CourtIndex
func NewCourtIndex(config IndexConfig, logger *zap.Logger) (*CourtIndex, error) {
	index, err := openIndex(config.Host, config.APIKey, config.IndexName)
	if err != nil {
		return nil, err
	}
	return newCourtIndex(index, config.IndexName, config.BatchSize, logger), nil
}

func newCourtIndex(index documentIndex, name string, batchSize int, logger *zap.Logger) *CourtIndex {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &CourtIndex{
		index:     index,
		name:      name,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Configure cập nhật settings của index
func (ci *CourtIndex) Configure() error {
	task, err := ci.index.UpdateSettings(&ms.Settings{
		SearchableAttributes: []string{"name", "address"},
		FilterableAttributes: []string{"_geo", "rating", "averagePlayers"},
		SortableAttributes:   []string{"_geo", "rating", "name"},
		RankingRules:         []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
	})
	if err != nil {
		return fmt.Errorf("lỗi cấu hình index %s: %w", ci.name, err)
	}

	ci.logger.Info("Configured courts search index",
		zap.String("index", ci.name),
		zap.Int64("task_uid", task.TaskUID))
	return nil
}

// IndexCourts thêm courts vào index theo batch. ids[i] là ObjectID của courts[i].
func (ci *CourtIndex) IndexCourts(ids []string, courts []models.CourtRecord) (int, error) {
	if len(ids) != len(courts) {
		return 0, fmt.Errorf("số id (%d) không khớp số courts (%d)", len(ids), len(courts))
	}
	if len(courts) == 0 {
		return 0, nil
	}

	documents := make([]CourtDocument, len(courts))
	for i, court := range courts {
		documents[i] = NewCourtDocument(ids[i], court)
	}

	indexed := 0
	for i := 0; i < len(documents); i += ci.batchSize {
		end := i + ci.batchSize
		if end > len(documents) {
			end = len(documents)
		}

		batch := documents[i:end]
		task, err := ci.index.AddDocuments(batch, "id")
		if err != nil {
			return indexed, fmt.Errorf("lỗi thêm documents batch %d-%d: %w", i, end, err)
		}
		indexed += len(batch)

		ci.logger.Debug("Added courts batch",
			zap.Int("from", i),
			zap.Int("to", end),
			zap.Int64("task_uid", task.TaskUID))
	}

	ci.logger.Info("Indexed courts", zap.String("index", ci.name), zap.Int("total_documents", indexed))
	return indexed, nil
}

// Clear xóa toàn bộ documents trong index
func (ci *CourtIndex) Clear() error {
	task, err := ci.index.DeleteAllDocuments()
	if err != nil {
		return fmt.Errorf("lỗi xóa documents index %s: %w", ci.name, err)
	}
	if task == nil {
		return errors.New("meilisearch không trả về task")
	}

	ci.logger.Info("Cleared courts search index",
		zap.String("index", ci.name),
		zap.Int64("task_uid", task.TaskUID))
	return nil
}

// NewCourtDocument chuyển CourtRecord sang document của Meilisearch
func NewCourtDocument(id string, court models.CourtRecord) CourtDocument {
	return CourtDocument{
		ID:             id,
		Name:           court.Name,
		Address:        court.Address,
		Hours:          court.Hours,
		PhoneNumber:    court.PhoneNumber,
		Rating:         court.Rating,
		AveragePlayers: court.AveragePlayers,
		Geo:            GeoPoint{Lat: court.Latitude, Lng: court.Longitude},
	}
}
