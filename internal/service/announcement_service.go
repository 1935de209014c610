package service

import (
	"context"

	"forum-api/internal/models"
	"forum-api/internal/repository"
)

// AnnouncementService handles business logic for announcements.
type AnnouncementService struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(repo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

// CreateAnnouncement stores a new announcement.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, req *models.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

// ListAnnouncements returns all announcements.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return s.repo.FindAll(ctx)
}
