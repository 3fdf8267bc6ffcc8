package routes

import (
	"waste-backend/internal/api/handlers"
	"waste-backend/internal/api/middleware"
	"waste-backend/internal/config"
	"waste-backend/internal/repository"
	"waste-backend/internal/services"
	"waste-backend/pkg/cache"
	"waste-backend/pkg/jwt"
	"waste-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, redisClient *redis.Client, cacheManager cache.CacheManager) {
	// Initialize repositories
	classificationRepo := repository.NewClassificationRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	dustbinRepo := repository.NewDustbinRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize services
	classificationService := services.NewClassificationService(classificationRepo, cacheManager)
	dashboardService := services.NewDashboardService(classificationRepo, vehicleRepo, cacheManager)
	analyticsService := services.NewAnalyticsService(classificationRepo, cacheManager)
	vehicleService := services.NewVehicleService(vehicleRepo)
	dustbinService := services.NewDustbinService(dustbinRepo, requestRepo, cfg.FillThreshold)
	requestService := services.NewRequestService(requestRepo, dustbinRepo, vehicleRepo)
	adminService := services.NewAdminService(adminRepo)
	authService := services.NewAuthService(adminRepo, jwt.NewJWTUtil())

	// Initialize handlers
	classificationHandler := handlers.NewClassificationHandler(classificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	dustbinHandler := handlers.NewDustbinHandler(dustbinService)
	requestHandler := handlers.NewRequestHandler(requestService)
	adminHandler := handlers.NewAdminHandler(adminService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db, redisClient, cacheManager)

	// API routes
	api := router.Group("/api/v1")

	// Public routes
	api.GET("/health", healthHandler.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Detections arrive from the camera pipeline, which authenticates with
	// an API key at the gateway rather than an admin JWT
	api.POST("/classifications", classificationHandler.CreateClassification)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		// Classifications
		classifications := protected.Group("/classifications")
		{
			classifications.GET("", classificationHandler.GetClassifications)
			classifications.GET("/recent", classificationHandler.GetRecentClassifications)
		}

		// Dashboard and analytics
		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.GET("/analytics", analyticsHandler.GetAnalytics)

		// Vehicles
		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.PATCH("/:id/status", vehicleHandler.UpdateVehicleStatus)
			vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		}

		// Dustbins
		dustbins := protected.Group("/dustbins")
		{
			dustbins.GET("", dustbinHandler.GetDustbins)
			dustbins.POST("", dustbinHandler.CreateDustbin)
			dustbins.GET("/:id", dustbinHandler.GetDustbin)
			dustbins.PATCH("/:id/fill", dustbinHandler.ReportFill)
		}

		// Collection requests
		requests := protected.Group("/requests")
		{
			requests.GET("", requestHandler.GetRequests)
			requests.POST("", requestHandler.CreateRequest)
			requests.PATCH("/:id/status", requestHandler.UpdateRequestStatus)
		}

		// Admins
		admins := protected.Group("/admins")
		{
			admins.GET("", adminHandler.GetAdmins)
			admins.POST("", adminHandler.CreateAdmin)
			admins.DELETE("/:id", adminHandler.DeleteAdmin)
		}
	}
}
