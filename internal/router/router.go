// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "forum-api/swagger" // Import generated swagger docs

	"forum-api/internal/authz"
	"forum-api/internal/handler"
	"forum-api/internal/middleware"
	"forum-api/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	PostHandler         *handler.PostHandler
	CommentHandler      *handler.CommentHandler
	AnnouncementHandler *handler.AnnouncementHandler
	ReportHandler       *handler.ReportHandler
	TagHandler          *handler.TagHandler
	AdminHandler        *handler.AdminHandler
	PaymentHandler      *handler.PaymentHandler
	UploadHandler       *handler.UploadHandler
	JWTManager          *auth.JWTManager
	Authorizer          authz.Authorizer
}

// Setup creates and configures the Gin router.
// Route paths match the contract the existing frontend was built against, so
// there is no version prefix.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.Auth(cfg.JWTManager)
	adminOnly := middleware.AdminOnly(cfg.Authorizer)

	// Token issuance (public)
	r.POST("/jwt", cfg.AuthHandler.IssueToken)

	// User routes
	users := r.Group("/users")
	{
		users.POST("", cfg.UserHandler.Register)
		users.GET("", authRequired, adminOnly, cfg.UserHandler.GetAllUsers)
		users.GET("/admin/:email", authRequired, middleware.SelfOnly("email"), cfg.UserHandler.AdminStatus)
		users.GET("/membership/:email", authRequired, cfg.UserHandler.Membership)
		users.PATCH("/member/:email", cfg.UserHandler.UpgradeMembership)
		users.PATCH("/admin/:id", authRequired, adminOnly, cfg.UserHandler.PromoteToAdmin)
		users.DELETE("/:id", authRequired, adminOnly, cfg.UserHandler.DeleteUser)

		// Author post listings
		users.GET("/posts", authRequired, cfg.PostHandler.MyPosts)
		users.GET("/:email/posts", cfg.PostHandler.RecentPostsByAuthor)
	}

	// Post routes
	posts := r.Group("/posts")
	{
		posts.GET("", cfg.PostHandler.ListPosts)
		posts.POST("", authRequired, cfg.PostHandler.CreatePost)
		posts.PATCH("/:id", cfg.PostHandler.SetVotes)
		posts.PATCH("/comment-increment/:id", cfg.PostHandler.IncrementComments)
		posts.DELETE("/:id", authRequired, cfg.PostHandler.DeletePost)
	}
	r.GET("/detailedPost/:id", cfg.PostHandler.GetPost)

	// Comment routes
	r.POST("/comments", cfg.CommentHandler.CreateComment)
	r.GET("/comments/:postTitle", cfg.CommentHandler.CommentsForPost)

	// Announcement routes
	r.GET("/announcements", cfg.AnnouncementHandler.ListAnnouncements)
	r.POST("/announcement", authRequired, adminOnly, cfg.AnnouncementHandler.CreateAnnouncement)

	// Tag routes
	r.GET("/tags", cfg.TagHandler.ListTags)

	// Payment routes
	r.POST("/create-payment-intent", cfg.PaymentHandler.CreateIntent)
	r.POST("/payments", cfg.PaymentHandler.RecordPayment)
	r.GET("/payments/:email", authRequired, middleware.SelfOnly("email"), cfg.PaymentHandler.History)

	// Report routes
	reports := r.Group("/reports")
	{
		reports.POST("", cfg.ReportHandler.CreateReport)
		reports.GET("", authRequired, adminOnly, cfg.ReportHandler.ListReports)
		reports.DELETE("/deny/:id", authRequired, adminOnly, cfg.ReportHandler.DenyReport)
		reports.DELETE("/delete-comment/:id", authRequired, adminOnly, cfg.ReportHandler.DeleteReportedComment)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(authRequired, adminOnly)
	{
		admin.GET("/profile", cfg.AdminHandler.Profile)
		admin.POST("/tags", cfg.TagHandler.AddTag)
	}

	// Upload routes
	r.POST("/uploads", authRequired, cfg.UploadHandler.RequestUpload)
	r.GET("/uploads/url/:key", cfg.UploadHandler.DownloadURL)

	return r
}
