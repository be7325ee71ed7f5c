package routes

import (
	"RehabCare/cache"
	"RehabCare/config"
	"RehabCare/controllers"
	"RehabCare/handlers"
	"RehabCare/middlewares"
	"RehabCare/repositories"
	"RehabCare/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging and metrics middleware
	router.Use(middlewares.LoggingMiddleware())
	router.Use(middlewares.MetricsMiddleware())

	// Initialize repositories
	patientRepo := repositories.NewPatientRepository(cache)
	expenseTypeRepo := repositories.NewExpenseTypeRepository(cache)
	expenseRepo := repositories.NewExpenseRepository(cache)
	expenseGroupRepo := repositories.NewExpenseGroupRepository(cache)
	medicineRepo := repositories.NewMedicineRepository(cache)
	paymentRepo := repositories.NewPaymentRepository(cache, expenseRepo)

	// Initialize services and handlers
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	expenseTypeHandler := handlers.NewExpenseTypeHandler(services.NewExpenseTypeService(expenseTypeRepo))
	expenseHandler := handlers.NewExpenseHandler(services.NewExpenseService(expenseRepo, patientRepo, expenseTypeRepo))
	expenseGroupHandler := handlers.NewExpenseGroupHandler(services.NewExpenseGroupService(expenseGroupRepo, patientRepo))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(expenseRepo, patientRepo, paymentRepo))
	inventoryHandler := handlers.NewInventoryHandler(services.NewInventoryService(medicineRepo))
	reportHandler := handlers.NewReportHandler(services.NewReportService(expenseRepo))

	// Register resource routes under the configurable API base path
	api := router.Group(config.GetAPIBasePath())
	controllers.SetupClinicRoutes(
		api,
		patientHandler,
		expenseTypeHandler,
		expenseHandler,
		expenseGroupHandler,
		billingHandler,
		inventoryHandler,
		reportHandler,
	)

	controllers.SetupRootRoute(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
