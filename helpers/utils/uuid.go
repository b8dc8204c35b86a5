package utils

import (
	"github.com/google/uuid"
)

// GenerateRunID tạo ID cho mỗi lần chạy purge/seed, dùng để trace log
func GenerateRunID() string {
	return uuid.NewString()
}

// ShortRunID 8 ký tự đầu của run ID, đủ để đọc log
func ShortRunID(runID string) string {
	if len(runID) < 8 {
		return runID
	}
	return runID[:8]
}
