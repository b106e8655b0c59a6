package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/config"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/database"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/engine"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/geocoding"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/handler"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/middleware"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/repository"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/service"
)

// SetupRouter wires repositories, services and handlers onto gin
func SetupRouter(cfg *config.Config) *gin.Engine {
	db := database.GetDB()

	segmentRepo := repository.NewSegmentRepository(db)
	pathRepo := repository.NewPathRepository(db)
	reportRepo := repository.NewReportRepository(db)
	tripRepo := repository.NewTripRepository(db)
	store := repository.NewEngineStore(segmentRepo, pathRepo, reportRepo)

	eng := engine.New(cfg.Engine)
	geocoder := geocoding.NewNominatimClient(cfg.GeocoderURL)

	pathSvc := service.NewPathService(pathRepo, segmentRepo, eng)
	reportSvc := service.NewReportService(reportRepo, segmentRepo, store, eng)
	tripSvc := service.NewTripService(tripRepo, segmentRepo)
	searchSvc := service.NewSearchService(pathRepo, pathSvc, geocoder, eng)

	pathHandler := handler.NewPathHandler(pathSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	tripHandler := handler.NewTripHandler(tripSvc)
	searchHandler := handler.NewSearchHandler(searchSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Bike paths API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		paths := api.Group("/paths")
		{
			paths.GET("/search", middleware.OptionalAuth(cfg.JWTSecret), searchHandler.SearchPaths)
			paths.GET("/:id", middleware.OptionalAuth(cfg.JWTSecret), pathHandler.GetPath)

			authed := paths.Group("", middleware.Auth(cfg.JWTSecret))
			{
				authed.GET("", pathHandler.ListPaths)
				authed.POST("", pathHandler.CreatePath)
				authed.PATCH("/:id", pathHandler.UpdatePath)
			}
		}

		reports := api.Group("/reports", middleware.Auth(cfg.JWTSecret))
		{
			reports.POST("", reportHandler.CreateReport)
			reports.POST("/:id/status", reportHandler.TransitionReport)
			reports.DELETE("/:id", reportHandler.DeleteReport)
		}

		segments := api.Group("/segments")
		{
			segments.GET("/:id/reports", reportHandler.ListBySegment)
		}

		trips := api.Group("/trips", middleware.Auth(cfg.JWTSecret))
		{
			trips.POST("", tripHandler.CreateTrip)
			trips.GET("/:id", tripHandler.GetTrip)
		}
	}

	return r
}
