package main

import (
	"log"

	"waste-backend/internal/api/middleware"
	"waste-backend/internal/api/routes"
	"waste-backend/internal/config"
	"waste-backend/internal/repository"
	"waste-backend/pkg/cache"
	"waste-backend/pkg/database"
	"waste-backend/pkg/ratelimit"
	"waste-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Disconnect(db.Client())

	createIndexes(db)

	// Initialize Redis client
	redisClient := redis.NewClient(cfg.Redis)
	defer redisClient.Close()

	healthStatus := redisClient.HealthCheck()
	if healthStatus.IsConnected {
		log.Printf("Redis connected successfully at %s", healthStatus.ConnectionInfo)
	} else {
		log.Printf("Redis connection failed: %s (will retry automatically)", healthStatus.Error)
	}

	cacheManager := cache.NewRedisCacheManager(redisClient, cache.DefaultCacheConfig())

	// Rate limiting falls back to per-process windows when Redis is down
	var limiter ratelimit.RateLimiter
	if healthStatus.IsConnected {
		limiter = ratelimit.NewRedisRateLimiter(redisClient.GetClient(), ratelimit.DefaultConfig())
	} else {
		limiter = ratelimit.NewMemoryRateLimiter(ratelimit.DefaultConfig())
	}

	// Setup Gin router
	router := gin.Default()

	// CORS middleware
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length", "X-RateLimit-Limit", "Retry-After"},
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	router.Use(cors.New(corsConfig))
	router.Use(middleware.RateLimitMiddleware(limiter))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, redisClient, cacheManager)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}

func createIndexes(db *mongo.Database) {
	indexed := map[string]interface{ CreateIndexes() error }{
		"waste_classifications": repository.NewClassificationRepository(db),
		"vehicles":              repository.NewVehicleRepository(db),
		"dustbins":              repository.NewDustbinRepository(db),
		"collection_requests":   repository.NewRequestRepository(db),
		"admins":                repository.NewAdminRepository(db),
	}

	for name, repo := range indexed {
		if err := repo.CreateIndexes(); err != nil {
			log.Printf("Failed to create indexes for %s: %v", name, err)
		}
	}
}
