package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forum-api/internal/authz"
	"forum-api/internal/cache"
	"forum-api/internal/config"
	"forum-api/internal/database"
	"forum-api/internal/handler"
	"forum-api/internal/payments"
	"forum-api/internal/repository"
	"forum-api/internal/router"
	"forum-api/internal/service"
	"forum-api/internal/storage"
	"forum-api/internal/validator"
	"forum-api/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Forum API
// @version         1.0
// @description     A REST API for a community forum built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// Payment provider
	stripeClient := payments.NewStripeClient(cfg.StripeSecret)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	postRepo := repository.NewPostRepository(mongoDB.Database)
	commentRepo := repository.NewCommentRepository(mongoDB.Database)
	announcementRepo := repository.NewAnnouncementRepository(mongoDB.Database)
	reportRepo := repository.NewReportRepository(mongoDB.Database)
	tagRepo := repository.NewTagRepository(mongoDB.Database)
	paymentRepo := repository.NewPaymentRepository(mongoDB.Database)
	cartRepo := repository.NewCartRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(userRepo)

	// Service layer
	authService := service.NewAuthService(jwtManager)
	userService := service.NewUserService(userRepo, redisCache)
	postService := service.NewPostService(postRepo, userRepo, redisCache)
	commentService := service.NewCommentService(commentRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	reportService := service.NewReportService(reportRepo, commentRepo)
	tagService := service.NewTagService(tagRepo)
	adminService := service.NewAdminService(userRepo, postRepo, commentRepo)
	paymentService := service.NewPaymentService(paymentRepo, cartRepo, stripeClient)
	uploadService := service.NewUploadService(s3Client)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	reportHandler := handler.NewReportHandler(reportService)
	tagHandler := handler.NewTagHandler(tagService)
	adminHandler := handler.NewAdminHandler(adminService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		PostHandler:         postHandler,
		CommentHandler:      commentHandler,
		AnnouncementHandler: announcementHandler,
		ReportHandler:       reportHandler,
		TagHandler:          tagHandler,
		AdminHandler:        adminHandler,
		PaymentHandler:      paymentHandler,
		UploadHandler:       uploadHandler,
		JWTManager:          jwtManager,
		Authorizer:          authorizer,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
