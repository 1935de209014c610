// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"forum-api/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	IssueTokenFunc func(ctx context.Context, req *models.IssueTokenRequest) (*models.TokenResponse, error)
}

func (m *MockAuthService) IssueToken(ctx context.Context, req *models.IssueTokenRequest) (*models.TokenResponse, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	RegisterFunc          func(ctx context.Context, req *models.RegisterUserRequest) (*models.RegisterUserResponse, error)
	GetAllUsersFunc       func(ctx context.Context) ([]models.User, error)
	IsAdminFunc           func(ctx context.Context, email string) (bool, error)
	GetMembershipFunc     func(ctx context.Context, email string) (*models.MembershipResponse, error)
	UpgradeMembershipFunc func(ctx context.Context, email string) error
	PromoteToAdminFunc    func(ctx context.Context, id string) error
	DeleteUserFunc        func(ctx context.Context, id string) error
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.RegisterUserResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserService) GetMembership(ctx context.Context, email string) (*models.MembershipResponse, error) {
	if m.GetMembershipFunc != nil {
		return m.GetMembershipFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserService) UpgradeMembership(ctx context.Context, email string) error {
	if m.UpgradeMembershipFunc != nil {
		return m.UpgradeMembershipFunc(ctx, email)
	}
	return nil
}

func (m *MockUserService) PromoteToAdmin(ctx context.Context, id string) error {
	if m.PromoteToAdminFunc != nil {
		return m.PromoteToAdminFunc(ctx, id)
	}
	return nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockPostService is a mock implementation of PostServicer.
type MockPostService struct {
	ListPostsFunc           func(ctx context.Context, query *models.PostListQuery) ([]models.Post, error)
	GetPostFunc             func(ctx context.Context, id string) (*models.Post, error)
	CreatePostFunc          func(ctx context.Context, email string, req *models.CreatePostRequest) (*models.Post, error)
	SetVotesFunc            func(ctx context.Context, id string, req *models.UpdateVotesRequest) error
	IncrementCommentsFunc   func(ctx context.Context, id string) error
	RecentPostsByAuthorFunc func(ctx context.Context, email string) ([]models.Post, error)
	PostsByAuthorFunc       func(ctx context.Context, email string) ([]models.Post, error)
	DeletePostFunc          func(ctx context.Context, id string) error
}

func (m *MockPostService) ListPosts(ctx context.Context, query *models.PostListQuery) ([]models.Post, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockPostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostService) CreatePost(ctx context.Context, email string, req *models.CreatePostRequest) (*models.Post, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, email, req)
	}
	return nil, nil
}

func (m *MockPostService) SetVotes(ctx context.Context, id string, req *models.UpdateVotesRequest) error {
	if m.SetVotesFunc != nil {
		return m.SetVotesFunc(ctx, id, req)
	}
	return nil
}

func (m *MockPostService) IncrementComments(ctx context.Context, id string) error {
	if m.IncrementCommentsFunc != nil {
		return m.IncrementCommentsFunc(ctx, id)
	}
	return nil
}

func (m *MockPostService) RecentPostsByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	if m.RecentPostsByAuthorFunc != nil {
		return m.RecentPostsByAuthorFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockPostService) PostsByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	if m.PostsByAuthorFunc != nil {
		return m.PostsByAuthorFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockPostService) DeletePost(ctx context.Context, id string) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, id)
	}
	return nil
}

// MockCommentService is a mock implementation of CommentServicer.
type MockCommentService struct {
	CreateCommentFunc   func(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error)
	CommentsForPostFunc func(ctx context.Context, postTitle string) ([]models.Comment, error)
}

func (m *MockCommentService) CreateComment(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCommentService) CommentsForPost(ctx context.Context, postTitle string) ([]models.Comment, error) {
	if m.CommentsForPostFunc != nil {
		return m.CommentsForPostFunc(ctx, postTitle)
	}
	return nil, nil
}

// MockAnnouncementService is a mock implementation of AnnouncementServicer.
type MockAnnouncementService struct {
	CreateAnnouncementFunc func(ctx context.Context, req *models.CreateAnnouncementRequest) (*models.Announcement, error)
	ListAnnouncementsFunc  func(ctx context.Context) ([]models.Announcement, error)
}

func (m *MockAnnouncementService) CreateAnnouncement(ctx context.Context, req *models.CreateAnnouncementRequest) (*models.Announcement, error) {
	if m.CreateAnnouncementFunc != nil {
		return m.CreateAnnouncementFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAnnouncementService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	if m.ListAnnouncementsFunc != nil {
		return m.ListAnnouncementsFunc(ctx)
	}
	return nil, nil
}

// MockReportService is a mock implementation of ReportServicer.
type MockReportService struct {
	CreateReportFunc               func(ctx context.Context, req *models.CreateReportRequest) (*models.CreateReportResponse, error)
	ListReportsFunc                func(ctx context.Context) ([]models.Report, error)
	DenyReportFunc                 func(ctx context.Context, id string) error
	ResolveWithCommentDeletionFunc func(ctx context.Context, id string) (*models.ModerationResult, error)
}

func (m *MockReportService) CreateReport(ctx context.Context, req *models.CreateReportRequest) (*models.CreateReportResponse, error) {
	if m.CreateReportFunc != nil {
		return m.CreateReportFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockReportService) ListReports(ctx context.Context) ([]models.Report, error) {
	if m.ListReportsFunc != nil {
		return m.ListReportsFunc(ctx)
	}
	return nil, nil
}

func (m *MockReportService) DenyReport(ctx context.Context, id string) error {
	if m.DenyReportFunc != nil {
		return m.DenyReportFunc(ctx, id)
	}
	return nil
}

func (m *MockReportService) ResolveWithCommentDeletion(ctx context.Context, id string) (*models.ModerationResult, error) {
	if m.ResolveWithCommentDeletionFunc != nil {
		return m.ResolveWithCommentDeletionFunc(ctx, id)
	}
	return nil, nil
}

// MockTagService is a mock implementation of TagServicer.
type MockTagService struct {
	ListTagsFunc func(ctx context.Context) ([]models.Tag, error)
	AddTagFunc   func(ctx context.Context, req *models.CreateTagRequest) (*models.CreateTagResponse, error)
}

func (m *MockTagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	if m.ListTagsFunc != nil {
		return m.ListTagsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTagService) AddTag(ctx context.Context, req *models.CreateTagRequest) (*models.CreateTagResponse, error) {
	if m.AddTagFunc != nil {
		return m.AddTagFunc(ctx, req)
	}
	return nil, nil
}

// MockAdminService is a mock implementation of AdminServicer.
type MockAdminService struct {
	ProfileFunc func(ctx context.Context, email string) (*models.AdminProfileResponse, error)
}

func (m *MockAdminService) Profile(ctx context.Context, email string) (*models.AdminProfileResponse, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, email)
	}
	return nil, nil
}

// MockPaymentService is a mock implementation of PaymentServicer.
type MockPaymentService struct {
	CreateIntentFunc  func(ctx context.Context, req *models.CreatePaymentIntentRequest) (*models.CreatePaymentIntentResponse, error)
	RecordPaymentFunc func(ctx context.Context, req *models.RecordPaymentRequest) (*models.RecordPaymentResponse, error)
	HistoryFunc       func(ctx context.Context, email string) ([]models.Payment, error)
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, req *models.CreatePaymentIntentRequest) (*models.CreatePaymentIntentResponse, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.RecordPaymentResponse, error) {
	if m.RecordPaymentFunc != nil {
		return m.RecordPaymentFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, email)
	}
	return nil, nil
}

// MockUploadService is a mock implementation of UploadServicer.
type MockUploadService struct {
	RequestUploadFunc func(ctx context.Context, req *models.RequestUploadRequest) (*models.UploadURLResponse, error)
	DownloadURLFunc   func(ctx context.Context, key string) (*models.DownloadURLResponse, error)
}

func (m *MockUploadService) RequestUpload(ctx context.Context, req *models.RequestUploadRequest) (*models.UploadURLResponse, error) {
	if m.RequestUploadFunc != nil {
		return m.RequestUploadFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUploadService) DownloadURL(ctx context.Context, key string) (*models.DownloadURLResponse, error) {
	if m.DownloadURLFunc != nil {
		return m.DownloadURLFunc(ctx, key)
	}
	return nil, nil
}
