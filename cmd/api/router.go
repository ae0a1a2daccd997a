package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/guillaumevincent/monpatrimoine/internal/config"
	"github.com/guillaumevincent/monpatrimoine/internal/handlers"
	"github.com/guillaumevincent/monpatrimoine/internal/middleware"
	"github.com/guillaumevincent/monpatrimoine/internal/report"
	"github.com/guillaumevincent/monpatrimoine/internal/services"
	"github.com/guillaumevincent/monpatrimoine/internal/store"
)

// newRouter wires services and handlers over db and registers every route.
func newRouter(appConfig *config.Config, db *gorm.DB) *gin.Engine {
	// Initialize services
	ledger := store.NewLedger(store.NewKV(db), appConfig.StorageVersion)
	auditService := services.NewAuditService(db)
	positionService := services.NewPositionService(ledger)
	bilanService := services.NewBilanService(ledger)
	snapshotService := services.NewSnapshotService(ledger, nil)
	authService := services.NewAuthService(appConfig.OwnerPasswordHash, appConfig.JWTExpirationDur)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, auditService)
	positionHandler := handlers.NewPositionHandler(positionService, auditService)
	bilanHandler := handlers.NewBilanHandler(bilanService, auditService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService, report.Options{Currency: appConfig.Currency})
	auditHandler := handlers.NewAuditHandler(auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)

	// Automated imports
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.PUT("/bilans/:date", bilanHandler.SubmitBilan)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(appConfig.AuthEnabled()))

	positions := protected.Group("/positions")
	positions.GET("", positionHandler.ListPositions)
	positions.POST("", positionHandler.CreatePosition)
	positions.GET("/:id", positionHandler.GetPosition)
	positions.PUT("/:id", positionHandler.UpdatePosition)
	positions.PATCH("/:id/active", positionHandler.TogglePositionActive)
	positions.DELETE("/:id", positionHandler.DeletePosition)

	bilans := protected.Group("/bilans")
	bilans.GET("", bilanHandler.ListBilanDates)
	bilans.GET("/:date", bilanHandler.GetBilan)
	bilans.PUT("/:date", bilanHandler.SubmitBilan)
	bilans.DELETE("/:date", bilanHandler.DeleteBilan)

	snapshots := protected.Group("/snapshots")
	snapshots.GET("", snapshotHandler.GetSnapshots)
	snapshots.GET("/report", snapshotHandler.GetReport)

	protected.GET("/audit-logs", auditHandler.ListAuditLogs)

	return router
}
