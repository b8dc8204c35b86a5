package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes trang chủ và danh sách endpoint
func SetupWebRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Court Finder Admin",
			"docs":    "/docs",
		})
	})

	router.GET("/docs", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"api": "Court Finder Admin API v1",
			"endpoints": map[string]string{
				"catalog_summary": "GET /v1/catalog/summary",
				"stats":           "GET /v1/admin/courts/stats",
				"purge":           "POST /v1/admin/courts/purge",
				"seed":            "POST /v1/admin/courts/seed?dry_run=true",
				"reset":           "POST /v1/admin/courts/reset",
				"health":          "GET /health",
			},
		})
	})
}
