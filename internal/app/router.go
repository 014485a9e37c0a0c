package app

import (
	"eduguide_backend/docs"
	"eduguide_backend/internal/config"
	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		learn := api.Group("/learn")
		{
			learn.POST("/roadmap", c.learning.CreateRoadmap)
			learn.GET("/roadmap/:id", c.learning.GetRoadmap)
			learn.POST("/milestone-complete", c.learning.CompleteMilestone)
		}

		files := api.Group("/files")
		{
			files.POST("/upload-summary", c.file.UploadSummary)
		}
	}

	// 本地归档文件
	if cfg.Storage.ArchivePapers && cfg.Storage.Type == util.StorageLocal {
		router.Static("/archive", cfg.Storage.LocalPath)
	}
}
