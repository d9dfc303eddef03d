package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/rdtr-backend-go/internal/config"
	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/handler"
	"github.com/jengzang/rdtr-backend-go/internal/middleware"
	"github.com/jengzang/rdtr-backend-go/internal/repository"
	"github.com/jengzang/rdtr-backend-go/internal/service"
)

// SetupRouter wires handlers, services and repositories. db may be nil, in
// which case every query is answered from the JSON datasets in memory.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	loader := dataset.NewLoader(dataset.NewStore(cfg.DataDir))

	var activityRepo *repository.ActivityRepository
	var intensityRepo *repository.IntensityRepository
	var kepsusRepo *repository.KepsusRepository
	var runRepo *repository.IngestRunRepository
	if db != nil {
		activityRepo = repository.NewActivityRepository(db)
		intensityRepo = repository.NewIntensityRepository(db)
		kepsusRepo = repository.NewKepsusRepository(db)
		runRepo = repository.NewIngestRunRepository(db)
	}

	zoningService := service.NewZoningService(activityRepo, loader)
	intensityService := service.NewIntensityService(intensityRepo, loader)
	kepsusService := service.NewKepsusService(kepsusRepo, loader)
	exportService := service.NewExportService(zoningService)

	zoningHandler := handler.NewZoningHandler(zoningService)
	intensityHandler := handler.NewIntensityHandler(intensityService)
	kepsusHandler := handler.NewKepsusHandler(kepsusService)
	exportHandler := handler.NewExportHandler(exportService)
	importHandler := handler.NewImportHandler()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "RDTR Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		zoning := api.Group("/zoning")
		{
			zoning.GET("", zoningHandler.GetActivities)
			zoning.GET("/zones", zoningHandler.GetZones)
			zoning.GET("/regulations", zoningHandler.GetRegulations)
			zoning.GET("/merged", zoningHandler.GetMergedZones)
		}

		intensity := api.Group("/intensity")
		{
			intensity.GET("", intensityHandler.GetRecords)
			intensity.GET("/filters", intensityHandler.GetFilters)
			intensity.GET("/text", intensityHandler.GetText)
			intensity.GET("/summary", intensityHandler.GetSummary)
		}

		api.GET("/kepsus", kepsusHandler.GetRecords)

		export := api.Group("/export")
		export.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/xls", exportHandler.ExportXLS)
			export.GET("/text", exportHandler.ExportText)
		}

		api.POST("/import/portal", importHandler.ParsePortal)

		if runRepo != nil {
			ingestHandler := handler.NewIngestHandler(runRepo)
			api.GET("/ingest/runs", ingestHandler.GetRuns)
		}
	}

	return r
}
