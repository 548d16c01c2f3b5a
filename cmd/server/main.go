package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"skillbridge/internal/analyzer"
	"skillbridge/internal/api/routes"
	"skillbridge/internal/config"
	"skillbridge/internal/llm"
	"skillbridge/internal/roadmap"
	"skillbridge/pkg/utils"
)

func main() {
	// Load configuration
	configPath := utils.GetStringOrDefault(os.Getenv("CONFIG_PATH"), "configs/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger := utils.GetLogger()
	logger.Info("Starting SkillBridge Utils")

	// Initialize model provider
	factory := llm.NewFactory(cfg)
	provider, err := factory.CreateProvider()
	if err != nil {
		logger.WithError(err).Fatal("Failed to create model provider")
	}

	logger.WithField("provider", provider.GetProviderName()).Info("Model provider initialized")

	// Initialize orchestrators
	anl := analyzer.New(cfg, provider)
	gen := roadmap.New(cfg, provider)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, anl, gen)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Error shutting down server")
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("address", address).Info("Server starting")

	if err := e.Start(address); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
