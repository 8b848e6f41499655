package main

import (
	"fmt"
	"net/http"
	"os"

	"crimemap/internal/config"
	"crimemap/internal/database"
	"crimemap/internal/handlers"
	"crimemap/internal/logger"
	"crimemap/internal/middleware"
	"crimemap/internal/services"
	"crimemap/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "crimemap/internal/docs" // Import swagger docs
)

// @title           Crime Map API
// @version         1.0
// @description     Crime Map is a monitoring dashboard for crime and incident data across the Indonesian region hierarchy, aggregated by category, severity, and status.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	regionService := services.NewRegionService(db)
	monitoringService := services.NewMonitoringService(db)
	dashboardService := services.NewDashboardService(categoryService, monitoringService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	regionHandler := handlers.NewRegionHandler(regionService)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/categories", categoryHandler.GetCategories)
	v1.GET("/categories/:id", categoryHandler.GetCategoryByID)
	v1.GET("/categories/:id/sub-categories", categoryHandler.GetSubCategories)

	regions := v1.Group("/regions")
	regions.GET("/provinsi", regionHandler.GetProvinsi)
	regions.GET("/provinsi/:id/kabupaten-kota", regionHandler.GetKabupatenKota)
	regions.GET("/kabupaten-kota/:id/kecamatan", regionHandler.GetKecamatan)

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Operator profile
	protected.GET("/profile", authHandler.GetProfile)

	// Category management routes
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)
	protected.POST("/categories/:id/sub-categories", categoryHandler.CreateSubCategory)
	protected.DELETE("/categories/:id/sub-categories/:subId", categoryHandler.DeleteSubCategory)

	// Monitoring data routes
	monitoring := protected.Group("/monitoring-data")
	monitoring.POST("", monitoringHandler.CreateMonitoringData)
	monitoring.GET("", monitoringHandler.ListMonitoringData)
	monitoring.GET("/:id", monitoringHandler.GetMonitoringDataByID)
	monitoring.DELETE("/:id", monitoringHandler.DeleteMonitoringData)

	log.Infof("Starting Crime Map backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
