// Package search đồng bộ court records sang Meilisearch để app tìm sân theo tên/vị trí
package search

import (
	"fmt"

	ms "github.com/meilisearch/meilisearch-go"
)

// documentIndex tập con của ms.IndexManager mà CourtIndex cần
type documentIndex interface {
	AddDocuments(documentsPtr interface{}, primaryKey ...string) (*ms.TaskInfo, error)
	DeleteAllDocuments() (*ms.TaskInfo, error)
	UpdateSettings(request *ms.Settings) (*ms.TaskInfo, error)
}

// openIndex tạo client, kiểm tra health rồi trả về index theo tên
func openIndex(url, key, indexName string) (documentIndex, error) {
	client := ms.New(url, ms.WithAPIKey(key))

	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("không thể kết nối Meilisearch: %w", err)
	}

	return client.Index(indexName), nil
}
