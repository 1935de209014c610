package service

import (
	"context"
	"time"

	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hand-rolled stubs for the repository and infrastructure interfaces. Each
// method delegates to an optional func field so tests only set up what they
// use.

type stubUserRepo struct {
	CreateFunc       func(ctx context.Context, user *models.User) error
	FindByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc  func(ctx context.Context, email string) (*models.User, error)
	FindAllFunc      func(ctx context.Context) ([]models.User, error)
	SetBadgeFunc     func(ctx context.Context, email, badge string) error
	SetRoleFunc      func(ctx context.Context, id primitive.ObjectID, role string) error
	ReserveQuotaFunc func(ctx context.Context, email string) error
	ReleaseQuotaFunc func(ctx context.Context, email string) error
	DeleteFunc       func(ctx context.Context, id primitive.ObjectID) error
	CountFunc        func(ctx context.Context) (int64, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.FindByEmailFunc != nil {
		return s.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	if s.FindAllFunc != nil {
		return s.FindAllFunc(ctx)
	}
	return nil, nil
}

func (s *stubUserRepo) SetBadge(ctx context.Context, email, badge string) error {
	if s.SetBadgeFunc != nil {
		return s.SetBadgeFunc(ctx, email, badge)
	}
	return nil
}

func (s *stubUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	if s.SetRoleFunc != nil {
		return s.SetRoleFunc(ctx, id, role)
	}
	return nil
}

func (s *stubUserRepo) ReserveQuota(ctx context.Context, email string) error {
	if s.ReserveQuotaFunc != nil {
		return s.ReserveQuotaFunc(ctx, email)
	}
	return nil
}

func (s *stubUserRepo) ReleaseQuota(ctx context.Context, email string) error {
	if s.ReleaseQuotaFunc != nil {
		return s.ReleaseQuotaFunc(ctx, email)
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, id)
	}
	return nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	if s.CountFunc != nil {
		return s.CountFunc(ctx)
	}
	return 0, nil
}

type stubPostRepo struct {
	CreateFunc            func(ctx context.Context, post *models.Post) error
	FindByIDFunc          func(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	ListFunc              func(ctx context.Context, sortOption, searchTerm string) ([]models.Post, error)
	FindByAuthorFunc      func(ctx context.Context, email string, limit int64) ([]models.Post, error)
	SetVotesFunc          func(ctx context.Context, id primitive.ObjectID, upVote, downVote int) error
	IncrementCommentsFunc func(ctx context.Context, id primitive.ObjectID) error
	DeleteFunc            func(ctx context.Context, id primitive.ObjectID) error
	CountFunc             func(ctx context.Context) (int64, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubPostRepo) List(ctx context.Context, sortOption, searchTerm string) ([]models.Post, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx, sortOption, searchTerm)
	}
	return nil, nil
}

func (s *stubPostRepo) FindByAuthor(ctx context.Context, email string, limit int64) ([]models.Post, error) {
	if s.FindByAuthorFunc != nil {
		return s.FindByAuthorFunc(ctx, email, limit)
	}
	return nil, nil
}

func (s *stubPostRepo) SetVotes(ctx context.Context, id primitive.ObjectID, upVote, downVote int) error {
	if s.SetVotesFunc != nil {
		return s.SetVotesFunc(ctx, id, upVote, downVote)
	}
	return nil
}

func (s *stubPostRepo) IncrementComments(ctx context.Context, id primitive.ObjectID) error {
	if s.IncrementCommentsFunc != nil {
		return s.IncrementCommentsFunc(ctx, id)
	}
	return nil
}

func (s *stubPostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, id)
	}
	return nil
}

func (s *stubPostRepo) Count(ctx context.Context) (int64, error) {
	if s.CountFunc != nil {
		return s.CountFunc(ctx)
	}
	return 0, nil
}

type stubCommentRepo struct {
	CreateFunc          func(ctx context.Context, comment *models.Comment) error
	FindByPostTitleFunc func(ctx context.Context, postTitle string) ([]models.Comment, error)
	DeleteFunc          func(ctx context.Context, id primitive.ObjectID) error
	CountFunc           func(ctx context.Context) (int64, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, comment)
	}
	return nil
}

func (s *stubCommentRepo) FindByPostTitle(ctx context.Context, postTitle string) ([]models.Comment, error) {
	if s.FindByPostTitleFunc != nil {
		return s.FindByPostTitleFunc(ctx, postTitle)
	}
	return nil, nil
}

func (s *stubCommentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, id)
	}
	return nil
}

func (s *stubCommentRepo) Count(ctx context.Context) (int64, error) {
	if s.CountFunc != nil {
		return s.CountFunc(ctx)
	}
	return 0, nil
}

type stubReportRepo struct {
	CreateFunc   func(ctx context.Context, report *models.Report) error
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	FindAllFunc  func(ctx context.Context) ([]models.Report, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) error
}

func (s *stubReportRepo) Create(ctx context.Context, report *models.Report) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, report)
	}
	return nil
}

func (s *stubReportRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubReportRepo) FindAll(ctx context.Context) ([]models.Report, error) {
	if s.FindAllFunc != nil {
		return s.FindAllFunc(ctx)
	}
	return nil, nil
}

func (s *stubReportRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, id)
	}
	return nil
}

type stubTagRepo struct {
	CreateFunc      func(ctx context.Context, tag *models.Tag) error
	FindByValueFunc func(ctx context.Context, value string) (*models.Tag, error)
	FindAllFunc     func(ctx context.Context) ([]models.Tag, error)
}

func (s *stubTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, tag)
	}
	return nil
}

func (s *stubTagRepo) FindByValue(ctx context.Context, value string) (*models.Tag, error) {
	if s.FindByValueFunc != nil {
		return s.FindByValueFunc(ctx, value)
	}
	return nil, nil
}

func (s *stubTagRepo) FindAll(ctx context.Context) ([]models.Tag, error) {
	if s.FindAllFunc != nil {
		return s.FindAllFunc(ctx)
	}
	return nil, nil
}

type stubPaymentRepo struct {
	CreateFunc      func(ctx context.Context, payment *models.Payment) error
	FindByEmailFunc func(ctx context.Context, email string) ([]models.Payment, error)
}

func (s *stubPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, payment)
	}
	return nil
}

func (s *stubPaymentRepo) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	if s.FindByEmailFunc != nil {
		return s.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

type stubCartRepo struct {
	DeleteByIDsFunc func(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

func (s *stubCartRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if s.DeleteByIDsFunc != nil {
		return s.DeleteByIDsFunc(ctx, ids)
	}
	return 0, nil
}

type stubCache struct {
	SetFunc    func(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetFunc    func(ctx context.Context, key string, dest interface{}) (bool, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.SetFunc != nil {
		return s.SetFunc(ctx, key, value, ttl)
	}
	return nil
}

func (s *stubCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, key, dest)
	}
	return false, nil
}

func (s *stubCache) Delete(ctx context.Context, key string) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, key)
	}
	return nil
}

type stubTokenIssuer struct {
	GenerateTokenFunc func(email, name string) (string, error)
}

func (s *stubTokenIssuer) GenerateToken(email, name string) (string, error) {
	if s.GenerateTokenFunc != nil {
		return s.GenerateTokenFunc(email, name)
	}
	return "", nil
}

type stubIntentCreator struct {
	CreateIntentFunc func(ctx context.Context, amount int64, currency string) (string, error)
}

func (s *stubIntentCreator) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if s.CreateIntentFunc != nil {
		return s.CreateIntentFunc(ctx, amount, currency)
	}
	return "", nil
}

type stubPresigner struct {
	PresignUploadFunc   func(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	PresignDownloadFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
}

func (s *stubPresigner) PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	if s.PresignUploadFunc != nil {
		return s.PresignUploadFunc(ctx, key, contentType, expiry)
	}
	return "", nil
}

func (s *stubPresigner) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if s.PresignDownloadFunc != nil {
		return s.PresignDownloadFunc(ctx, key, expiry)
	}
	return "", nil
}
