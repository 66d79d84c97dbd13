package router

import (
	"net/http"

	"wedding_venue_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes sets up the liveness route.
func SetupHealthRoutes(engine *gin.Engine) {
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(group *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := group.Group("/reports")
	{
		reportRoutes.GET("", reportHandler.ListReportTypes)
		reportRoutes.GET("/:reportType", reportHandler.GetReport)
		reportRoutes.POST("", reportHandler.GenerateReport)
	}
}
