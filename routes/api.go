package routes

import (
	"github.com/court-finder/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes thiết lập tất cả API routes
func SetupAPIRoutes(router *gin.Engine, courtController *controllers.CourtAdminController) {
	v1 := router.Group("/v1")
	{
		v1.GET("/catalog/summary", courtController.GetCatalogSummary)

		admin := v1.Group("/admin/courts")
		{
			admin.GET("/stats", courtController.GetStats)
			admin.POST("/purge", courtController.PurgeCourts)
			admin.POST("/seed", courtController.SeedCourts)
			admin.POST("/reset", courtController.ResetCourts)
		}

		v1.GET("/health", courtController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes
func SetupHealthRoutes(router *gin.Engine, courtController *controllers.CourtAdminController) {
	router.GET("/health", courtController.HealthCheck)
	router.GET("/ready", courtController.HealthCheck)
	router.GET("/live", courtController.HealthCheck)
}

// SetupAllRoutes thiết lập middleware, routes và 404 handler
func SetupAllRoutes(router *gin.Engine, courtController *controllers.CourtAdminController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, courtController)
	SetupAPIRoutes(router, courtController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}
