package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"skillbridge/internal/analyzer"
	"skillbridge/internal/api/handlers"
	"skillbridge/internal/api/middleware"
	"skillbridge/internal/config"
	"skillbridge/internal/roadmap"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, anl *analyzer.Analyzer, gen *roadmap.Generator) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig(cfg))
	e.Use(middleware.RequestValidation(cfg.Upload.MaxFileSize))
	// Short deadline for ordinary endpoints, model timeout plus slack for
	// endpoints that wait on inference
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.LLM.Timeout+10*time.Second))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler)
		health.GET("/live", handlers.LivenessHandler)
	}

	// API routes
	api := e.Group("/api")
	{
		skills := api.Group("/skills")
		{
			skills.POST("/parse", handlers.ParseSkillsHandler(cfg, anl))
		}

		roadmapGroup := api.Group("/roadmap")
		{
			roadmapGroup.POST("/generate", handlers.GenerateRoadmapHandler(gen))
		}

		recruiters := api.Group("/recruiters")
		{
			recruiters.GET("/dashboard", handlers.DashboardHandler)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("/verify", handlers.VerifyTaskHandler)
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "SkillBridge Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
