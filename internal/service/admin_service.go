package service

import (
	"context"

	"forum-api/internal/models"
	"forum-api/internal/repository"
)

// AdminService assembles the admin dashboard profile.
type AdminService struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// Profile returns the admin's own profile together with site-wide user, post
// and comment counts.
func (s *AdminService) Profile(ctx context.Context, email string) (*models.AdminProfileResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	postCount, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	commentCount, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminProfileResponse{
		Name:         user.Name,
		Image:        user.Image,
		Email:        user.Email,
		PostCount:    postCount,
		CommentCount: commentCount,
		UserCount:    userCount,
	}, nil
}
