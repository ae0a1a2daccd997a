package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/guillaumevincent/monpatrimoine/internal/config"
	"github.com/guillaumevincent/monpatrimoine/internal/database"
	"github.com/guillaumevincent/monpatrimoine/internal/logger"
	"github.com/guillaumevincent/monpatrimoine/internal/validator"

	_ "github.com/guillaumevincent/monpatrimoine/internal/docs" // Import swagger docs
)

// @title           Mon Patrimoine API
// @version         1.0
// @description     Track positions, record periodic bilans and follow net worth over time.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if !appConfig.AuthEnabled() {
		log.Warn("OWNER_PASSWORD_HASH is not set: the API is open to anyone who can reach it")
	}
	router := newRouter(appConfig, dbManager.DB())

	log.Infof("Starting Mon Patrimoine server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
