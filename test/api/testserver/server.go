//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"forum-api/internal/authz"
	"forum-api/internal/cache"
	"forum-api/internal/handler"
	"forum-api/internal/payments"
	"forum-api/internal/repository"
	"forum-api/internal/router"
	"forum-api/internal/service"
	"forum-api/internal/storage"
	"forum-api/pkg/auth"
	"forum-api/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the access token expiry time used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	PostRepo         repository.PostRepository
	CommentRepo      repository.CommentRepository
	AnnouncementRepo repository.AnnouncementRepository
	ReportRepo       repository.ReportRepository
	TagRepo          repository.TagRepository
	PaymentRepo      repository.PaymentRepository
	CartRepo         repository.CartRepository

	// Services (for direct service access in tests)
	AuthService         service.AuthServicer
	UserService         service.UserServicer
	PostService         service.PostServicer
	CommentService      service.CommentServicer
	AnnouncementService service.AnnouncementServicer
	ReportService       service.ReportServicer
	TagService          service.TagServicer
	AdminService        service.AdminServicer
	PaymentService      service.PaymentServicer
	UploadService       service.UploadServicer

	// Auth
	JWTManager *auth.JWTManager

	// Payments (mocked; never contacts Stripe)
	IntentCreator *payments.MockIntentCreator
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// Payment intents are mocked so tests never hit Stripe
	intentCreator := payments.NewMockIntentCreator()

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

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
	paymentService := service.NewPaymentService(paymentRepo, cartRepo, intentCreator)
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

	return &TestServer{
		Router:              r,
		MongoDB:             mongoDB,
		Redis:               redisContainer,
		MinIO:               minioContainer,
		UserRepo:            userRepo,
		PostRepo:            postRepo,
		CommentRepo:         commentRepo,
		AnnouncementRepo:    announcementRepo,
		ReportRepo:          reportRepo,
		TagRepo:             tagRepo,
		PaymentRepo:         paymentRepo,
		CartRepo:            cartRepo,
		AuthService:         authService,
		UserService:         userService,
		PostService:         postService,
		CommentService:      commentService,
		AnnouncementService: announcementService,
		ReportService:       reportService,
		TagService:          tagService,
		AdminService:        adminService,
		PaymentService:      paymentService,
		UploadService:       uploadService,
		JWTManager:          jwtManager,
		IntentCreator:       intentCreator,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
