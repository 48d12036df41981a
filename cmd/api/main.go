package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/endfield/backend/internal/config"
	"github.com/endfield/backend/internal/handlers"
	"github.com/endfield/backend/internal/middleware"
	"github.com/endfield/backend/internal/models"
	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize database
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		log.Fatalf("Failed to init storage service: %v", err)
	}
	identityService := services.NewIdentityService(db, cfg)
	assetService := services.NewAssetService(db)
	fileService := services.NewFileService(db, storageService, cfg)
	userService := services.NewUserService(db, storageService, cfg)
	adminService := services.NewAdminService(db, cfg)
	blueprintService := services.NewBlueprintService(db)
	statsService := services.NewStatsService(db)
	activityService := services.NewActivityService(db)
	auditService := services.NewAuditService(db)
	emailService := services.NewEmailService(cfg)

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	fileHandler := handlers.NewFileHandler(fileService, auditService)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService, auditService, emailService)
	blueprintHandler := handlers.NewBlueprintHandler(blueprintService)
	publicHandler := handlers.NewPublicHandler(statsService, activityService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Catch-all OPTIONS handler for CORS preflight requests
	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Public routes
	router.GET("/assets", assetHandler.ListAssets)
	router.POST("/upload/presigned", uploadHandler.GetUploadURL)
	router.GET("/stats", publicHandler.GetStats)
	router.GET("/activities", publicHandler.GetActivities)

	// Authenticated routes
	authed := router.Group("")
	authed.Use(middleware.Auth(identityService))
	{
		authed.POST("/assets", assetHandler.CreateAsset)

		authed.POST("/files", fileHandler.CreateFile)
		authed.GET("/files", fileHandler.ListFiles)
		authed.DELETE("/files/:id", fileHandler.DeleteFile)
		authed.POST("/files/batch-delete", fileHandler.BatchDeleteFiles)

		authed.GET("/users/me", userHandler.GetMe)
		authed.PATCH("/users/me", userHandler.UpdateMe)

		authed.POST("/blueprints", blueprintHandler.CreateBlueprint)
		authed.GET("/blueprints", blueprintHandler.ListBlueprints)
		authed.GET("/blueprints/:id", blueprintHandler.GetBlueprint)
		authed.PATCH("/blueprints/:id", blueprintHandler.UpdateBlueprint)
		authed.DELETE("/blueprints/:id", blueprintHandler.DeleteBlueprint)
	}

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(middleware.Auth(identityService))
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/applications", adminHandler.ListApplications)
		admin.POST("/approve/:user_id", adminHandler.ApproveOperator)
		admin.GET("/audit-logs", adminHandler.GetAuditLogs)
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
