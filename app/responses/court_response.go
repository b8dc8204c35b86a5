package responses

import (
	"github.com/court-finder/app/services"
	"github.com/court-finder/internal/catalog"
)

// ErrorResponse response lỗi
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// PurgeCourtsResponse response purge courts
type PurgeCourtsResponse struct {
	*services.PurgeResult
	Message string `json:"message"`
}

// SeedCourtsResponse response seed courts. Khi dry run chỉ có Summary.
type SeedCourtsResponse struct {
	DryRun  bool                 `json:"dry_run"`
	Result  *services.SeedResult `json:"result,omitempty"`
	Summary *catalog.Summary     `json:"summary,omitempty"`
	Message string               `json:"message"`
}

// ResetCourtsResponse response reset courts
type ResetCourtsResponse struct {
	*services.ResetResult
	Message string `json:"message"`
}

// HealthResponse response health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
