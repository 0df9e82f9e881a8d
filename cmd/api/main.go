package main

import (
	"fmt"
	"os"

	"energy-retrofit/internal/api/handlers"
	"energy-retrofit/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	log := logrus.StandardLogger()
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	store := handlers.NewInventoryStore(handlers.DefaultInventoryDir())
	if info, err := os.Stat(store.Dir()); err == nil && info.IsDir() {
		log.WithField("dir", store.Dir()).Info("inventory directory found")
	} else {
		log.WithField("dir", store.Dir()).Warn("inventory directory not found; only built-in presets available")
	}

	// Set up Gin router
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	simulateHandler := handlers.NewSimulateHandler(store, log)
	factoryHandler := handlers.NewFactoryHandler(store, log)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.Simulate)
		api.POST("/simulate/report", simulateHandler.Report)
		api.POST("/simulate/compare", simulateHandler.Compare)

		api.GET("/factories", factoryHandler.ListFactories)
		api.GET("/efficiency-classes", handlers.ListEfficiencyClasses)
		api.GET("/lighting-types", handlers.ListLightingTypes)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
