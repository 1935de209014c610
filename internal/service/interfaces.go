// Package service contains business logic for the application.
package service

import (
	"context"

	"forum-api/internal/models"
)

// AuthServicer defines the interface for token operations.
type AuthServicer interface {
	IssueToken(ctx context.Context, req *models.IssueTokenRequest) (*models.TokenResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	Register(ctx context.Context, req *models.RegisterUserRequest) (*models.RegisterUserResponse, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	GetMembership(ctx context.Context, email string) (*models.MembershipResponse, error)
	UpgradeMembership(ctx context.Context, email string) error
	PromoteToAdmin(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

// PostServicer defines the interface for post operations.
type PostServicer interface {
	ListPosts(ctx context.Context, query *models.PostListQuery) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, email string, req *models.CreatePostRequest) (*models.Post, error)
	SetVotes(ctx context.Context, id string, req *models.UpdateVotesRequest) error
	IncrementComments(ctx context.Context, id string) error
	RecentPostsByAuthor(ctx context.Context, email string) ([]models.Post, error)
	PostsByAuthor(ctx context.Context, email string) ([]models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// CommentServicer defines the interface for comment operations.
type CommentServicer interface {
	CreateComment(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error)
	CommentsForPost(ctx context.Context, postTitle string) ([]models.Comment, error)
}

// AnnouncementServicer defines the interface for announcement operations.
type AnnouncementServicer interface {
	CreateAnnouncement(ctx context.Context, req *models.CreateAnnouncementRequest) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
}

// ReportServicer defines the interface for moderation report operations.
type ReportServicer interface {
	CreateReport(ctx context.Context, req *models.CreateReportRequest) (*models.CreateReportResponse, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	DenyReport(ctx context.Context, id string) error
	ResolveWithCommentDeletion(ctx context.Context, id string) (*models.ModerationResult, error)
}

// TagServicer defines the interface for tag operations.
type TagServicer interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	AddTag(ctx context.Context, req *models.CreateTagRequest) (*models.CreateTagResponse, error)
}

// AdminServicer defines the interface for admin dashboard operations.
type AdminServicer interface {
	Profile(ctx context.Context, email string) (*models.AdminProfileResponse, error)
}

// PaymentServicer defines the interface for payment operations.
type PaymentServicer interface {
	CreateIntent(ctx context.Context, req *models.CreatePaymentIntentRequest) (*models.CreatePaymentIntentResponse, error)
	RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.RecordPaymentResponse, error)
	History(ctx context.Context, email string) ([]models.Payment, error)
}

// UploadServicer defines the interface for pre-signed upload operations.
type UploadServicer interface {
	RequestUpload(ctx context.Context, req *models.RequestUploadRequest) (*models.UploadURLResponse, error)
	DownloadURL(ctx context.Context, key string) (*models.DownloadURLResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer         = (*AuthService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ PostServicer         = (*PostService)(nil)
	_ CommentServicer      = (*CommentService)(nil)
	_ AnnouncementServicer = (*AnnouncementService)(nil)
	_ ReportServicer       = (*ReportService)(nil)
	_ TagServicer          = (*TagService)(nil)
	_ AdminServicer        = (*AdminService)(nil)
	_ PaymentServicer      = (*PaymentService)(nil)
	_ UploadServicer       = (*UploadService)(nil)
)
