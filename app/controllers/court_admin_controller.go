package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/court-finder/app/responses"
	"github.com/court-finder/app/services"
	"github.com/court-finder/internal/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourtAdmin các thao tác admin mà controller cần
type CourtAdmin interface {
	Purge(ctx context.Context) (*services.PurgeResult, error)
	Seed(ctx context.Context) (*services.SeedResult, error)
	Reset(ctx context.Context) (*services.ResetResult, error)
	Preview() *catalog.Summary
	Stats(ctx context.Context) (*services.CourtStats, error)
}

// CourtAdminController controller xử lý các request admin courts
type CourtAdminController struct {
	admin  CourtAdmin
	logger *zap.Logger
}

// NewCourtAdminController tạo mới CourtAdminController
func NewCourtAdminController(admin CourtAdmin, logger *zap.Logger) *CourtAdminController {
	return &CourtAdminController{
		admin:  admin,
		logger: logger,
	}
}

// PurgeCourts xóa toàn bộ courts
func (cc *CourtAdminController) PurgeCourts(c *gin.Context) {
	result, err := cc.admin.Purge(c.Request.Context())
	if err != nil {
		cc.fail(c, "PURGE_ERROR", "Lỗi purge courts", err)
		return
	}

	c.JSON(http.StatusOK, responses.PurgeCourtsResponse{
		PurgeResult: result,
		Message:     fmt.Sprintf("Deleted %d courts from database", result.DeletedCount),
	})
}

// SeedCourts seed courts từ catalog. ?dry_run=true chỉ trả về summary.
func (cc *CourtAdminController) SeedCourts(c *gin.Context) {
	if c.Query("dry_run") == "true" {
		c.JSON(http.StatusOK, responses.SeedCourtsResponse{
			DryRun:  true,
			Summary: cc.admin.Preview(),
			Message: "Dry run: không ghi database",
		})
		return
	}

	result, err := cc.admin.Seed(c.Request.Context())
	if err != nil {
		cc.fail(c, "SEED_ERROR", "Lỗi seed courts", err)
		return
	}

	c.JSON(http.StatusOK, responses.SeedCourtsResponse{
		Result:  result,
		Summary: result.Summary,
		Message: fmt.Sprintf("Successfully initialized %d basketball courts nationwide", result.Inserted),
	})
}

// ResetCourts purge rồi seed
func (cc *CourtAdminController) ResetCourts(c *gin.Context) {
	result, err := cc.admin.Reset(c.Request.Context())
	if err != nil {
		cc.fail(c, "RESET_ERROR", "Lỗi reset courts", err)
		return
	}

	c.JSON(http.StatusOK, responses.ResetCourtsResponse{
		ResetResult: result,
		Message:     "Reset courts thành công",
	})
}

// GetStats số courts trong database và coverage catalog
func (cc *CourtAdminController) GetStats(c *gin.Context) {
	stats, err := cc.admin.Stats(c.Request.Context())
	if err != nil {
		cc.fail(c, "STATS_ERROR", "Lỗi lấy thống kê", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCatalogSummary coverage của catalog, không đụng database
func (cc *CourtAdminController) GetCatalogSummary(c *gin.Context) {
	c.JSON(http.StatusOK, cc.admin.Preview())
}

// HealthCheck health check
func (cc *CourtAdminController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:  "ok",
		Service: "court-admin",
	})
}

func (cc *CourtAdminController) fail(c *gin.Context, code, message string, err error) {
	cc.logger.Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
		Error:     code,
		Message:   message + ": " + err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
