package service

import (
	"context"

	"forum-api/internal/models"
	"forum-api/internal/repository"
)

// CommentService handles business logic for comment operations.
type CommentService struct {
	repo repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(repo repository.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// CreateComment stores a comment. The post title is a weak reference; no
// check is made that a post with that title exists.
func (s *CommentService) CreateComment(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		UserEmail: req.UserEmail,
		PostTitle: req.PostTitle,
		Comment:   req.Comment,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// CommentsForPost returns all comments referencing a post title.
func (s *CommentService) CommentsForPost(ctx context.Context, postTitle string) ([]models.Comment, error) {
	return s.repo.FindByPostTitle(ctx, postTitle)
}
