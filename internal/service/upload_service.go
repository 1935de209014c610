package service

import (
	"context"
	"fmt"
	"time"

	"forum-api/internal/models"
	"forum-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// uploadURLExpiry bounds how long a pre-signed image URL stays valid.
const uploadURLExpiry = 15 * time.Minute

// UploadService issues pre-signed URLs for the image assets that user
// avatars and announcement images reference.
type UploadService struct {
	presigner storage.Presigner
}

// NewUploadService creates a new UploadService.
func NewUploadService(presigner storage.Presigner) *UploadService {
	return &UploadService{presigner: presigner}
}

// RequestUpload generates a unique object key and a pre-signed PUT URL for it.
func (s *UploadService) RequestUpload(ctx context.Context, req *models.RequestUploadRequest) (*models.UploadURLResponse, error) {
	key := fmt.Sprintf("%s-%s", primitive.NewObjectID().Hex(), req.FileName)

	url, err := s.presigner.PresignUpload(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &models.UploadURLResponse{
		Key:       key,
		UploadURL: url,
		ExpiresIn: int(uploadURLExpiry.Seconds()),
	}, nil
}

// DownloadURL generates a pre-signed GET URL for a stored object key.
func (s *UploadService) DownloadURL(ctx context.Context, key string) (*models.DownloadURLResponse, error) {
	url, err := s.presigner.PresignDownload(ctx, key, uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &models.DownloadURLResponse{
		URL:       url,
		ExpiresIn: int(uploadURLExpiry.Seconds()),
	}, nil
}
