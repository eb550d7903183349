// @title           Print Order Backend API
// @version         1.0.0
// @description     Backend API for a print shop: customers submit print orders with an uploaded document, pay by QR transfer, and track progress; admins drive the print queue. Stored documents and payment proofs expire and are swept after an order is delivered or cancelled.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"print-order-backend/docs"
	"print-order-backend/internal/config"
	"print-order-backend/internal/database"
	"print-order-backend/internal/handlers"
	"print-order-backend/internal/middleware"
	"print-order-backend/internal/services"
	"print-order-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		log.Println("Please set DATABASE_URL environment variable with your Supabase PostgreSQL connection string")
	}

	var dbClient *supabase.DatabaseClient
	if dbURL != "" {
		var err error
		dbClient, err = supabase.NewDatabaseClient(dbURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Database operations will be limited. Please configure DATABASE_URL properly.")
		} else {
			defer dbClient.Close()

			migrator, err := database.NewMigrator(dbURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	var cleanupService *services.CleanupService
	if dbClient != nil {
		cleanupService = services.NewCleanupService(dbClient, storageClient)
	}

	ordersHandler := handlers.NewOrdersHandler(dbClient, realtimeClient, cfg.LifecyclePolicy())
	uploadHandler := handlers.NewUploadHandler(storageClient)
	filesHandler := handlers.NewFilesHandler(cleanupService, realtimeClient)
	cleanupHandler := handlers.NewCleanupHandler(cleanupService, cfg.CleanupSecret)
	queueHandler := handlers.NewQueueHandler(dbClient)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public API routes
	api := router.Group("/api/v1")
	api.GET("/orders", ordersHandler.ListOrders)
	api.POST("/orders", ordersHandler.CreateOrder)
	api.POST("/upload", uploadHandler.Upload)
	api.GET("/queue", queueHandler.GetQueue)

	// Scheduler route (guarded by shared secret, not user JWTs)
	api.POST("/cleanup", cleanupHandler.Cleanup)

	// Admin routes
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.PATCH("/orders", ordersHandler.UpdateStatus)
	admin.POST("/delete-file", filesHandler.DeleteFile)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
