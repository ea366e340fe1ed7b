package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Seem1019/RealEstateApi/internal/handler"
	mid "github.com/Seem1019/RealEstateApi/internal/middleware"
	"github.com/Seem1019/RealEstateApi/internal/repository"
	"github.com/Seem1019/RealEstateApi/internal/service"
	"github.com/Seem1019/RealEstateApi/pkg/config"
	"github.com/Seem1019/RealEstateApi/pkg/database"
	"github.com/Seem1019/RealEstateApi/pkg/logger"
	"github.com/Seem1019/RealEstateApi/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting realestate-api",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Wire repositories, services, and handlers
	db := database.GetDB()
	propertyRepo := repository.NewPropertyRepository(db, log)
	ownerRepo := repository.NewOwnerRepository(db, log)
	propertySvc := service.NewPropertyService(propertyRepo, log)
	ownerSvc := service.NewOwnerService(ownerRepo, log)
	propertyHandler := handler.NewPropertyHandler(propertySvc, appConfig.Pagination.DefaultPageSize)
	ownerHandler := handler.NewOwnerHandler(ownerSvc)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware(log))

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Property API routes
	propertyAPI := e.Group("/api/properties")
	propertyAPI.POST("", propertyHandler.Create)
	propertyAPI.GET("", propertyHandler.List)
	propertyAPI.POST("/:id/images", propertyHandler.AddImage)
	propertyAPI.PATCH("/:id/price", propertyHandler.ChangePrice)
	propertyAPI.PUT("/:id", propertyHandler.Update)
	propertyAPI.GET("/:id/details", propertyHandler.GetDetails)
	propertyAPI.GET("/owner/:ownerId/properties", propertyHandler.GetByOwner)

	// Owner API routes
	ownerAPI := e.Group("/api/owners")
	ownerAPI.POST("", ownerHandler.Create)
	ownerAPI.GET("", ownerHandler.List)
	ownerAPI.GET("/:id", ownerHandler.Get)
	ownerAPI.PUT("/:id", ownerHandler.Update)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
