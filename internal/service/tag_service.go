package service

import (
	"context"
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/repository"
)

// TagService handles business logic for post tags.
type TagService struct {
	repo repository.TagRepository
}

// NewTagService creates a new TagService.
func NewTagService(repo repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

// ListTags returns all tags.
func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.repo.FindAll(ctx)
}

// AddTag inserts a tag unless it already exists. Duplicates are reported as
// success with a null inserted id, matching the registration contract.
func (s *TagService) AddTag(ctx context.Context, req *models.CreateTagRequest) (*models.CreateTagResponse, error) {
	existing, err := s.repo.FindByValue(ctx, req.Tag)
	if err != nil && !errors.Is(err, apperrors.ErrTagNotFound) {
		return nil, err
	}
	if existing != nil {
		return &models.CreateTagResponse{Message: "tag already exists", InsertedID: nil}, nil
	}

	tag := &models.Tag{Tag: req.Tag}
	if err := s.repo.Create(ctx, tag); err != nil {
		// Lost a race against a concurrent insert on the unique index.
		if errors.Is(err, apperrors.ErrTagAlreadyExists) {
			return &models.CreateTagResponse{Message: "tag already exists", InsertedID: nil}, nil
		}
		return nil, err
	}

	return &models.CreateTagResponse{Message: "tag added successfully", InsertedID: &tag.ID}, nil
}
