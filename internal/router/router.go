package router

import (
	"database/sql"

	"wedding_venue_backend/internal/config"
	"wedding_venue_backend/internal/handlers"
	"wedding_venue_backend/internal/middleware"
	"wedding_venue_backend/internal/repositories"
	"wedding_venue_backend/internal/services"
	"wedding_venue_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, cfg *config.Config) {
	// Initialize Repositories
	reportRepo := repositories.NewReportRepository(db)

	// Initialize Services
	reportService := services.NewReportService(reportRepo, services.ReportServiceOptions{
		TopN:     cfg.Reporting.TopN,
		Location: cfg.Reporting.Location,
	})

	// Initialize Handlers
	reportHandler := handlers.NewReportHandler(reportService)

	Register(engine, reportHandler, cfg.Auth)
}

// Register mounts the health and report routes. Report routes sit behind the bearer
// and role guards only when a JWT secret is configured.
func Register(engine *gin.Engine, reportHandler *handlers.ReportHandler, auth config.AuthConfig) {
	SetupHealthRoutes(engine)

	apiV1 := engine.Group("/api/v1")
	reports := apiV1.Group("")
	if auth.Enabled() {
		reports.Use(middleware.AuthMiddleware(auth.JWTSecret), middleware.RoleAuthMiddleware(auth.AllowedRoles...))
	} else {
		utils.LogInfo("JWT_SECRET not set, report routes are served without authentication")
	}
	SetupReportRoutes(reports, reportHandler)
}
