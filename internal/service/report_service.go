package service

import (
	"context"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService handles business logic for moderation reports, including the
// report-driven comment deletion cascade.
type ReportService struct {
	reportRepo  repository.ReportRepository
	commentRepo repository.CommentRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository, commentRepo repository.CommentRepository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		commentRepo: commentRepo,
	}
}

// CreateReport stores a moderation report. The comment reference is weak; the
// comment may be deleted independently before the report is acted on.
func (s *ReportService) CreateReport(ctx context.Context, req *models.CreateReportRequest) (*models.CreateReportResponse, error) {
	report := &models.Report{
		CommentText: req.CommentText,
		Feedback:    req.Feedback,
		ReportedBy:  req.ReportedBy,
	}

	if req.CommentID != "" {
		commentID, err := primitive.ObjectIDFromHex(req.CommentID)
		if err != nil {
			return nil, apperrors.ErrCommentNotFound
		}
		report.CommentID = commentID
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return &models.CreateReportResponse{InsertedID: report.ID}, nil
}

// ListReports returns all open reports.
func (s *ReportService) ListReports(ctx context.Context) ([]models.Report, error) {
	return s.reportRepo.FindAll(ctx)
}

// DenyReport discards a report without touching the referenced comment.
func (s *ReportService) DenyReport(ctx context.Context, id string) error {
	reportID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrReportNotFound
	}

	return s.reportRepo.Delete(ctx, reportID)
}

// ResolveWithCommentDeletion deletes the comment a report references, then
// the report itself. The report is only removed after the comment deletion is
// confirmed: if the comment is already gone the report stays in place so an
// admin can still see and deny it.
func (s *ReportService) ResolveWithCommentDeletion(ctx context.Context, id string) (*models.ModerationResult, error) {
	reportID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrReportNotFound
	}

	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if report.CommentID.IsZero() {
		return nil, apperrors.ErrReportMissingComment
	}

	if err := s.commentRepo.Delete(ctx, report.CommentID); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Delete(ctx, reportID); err != nil {
		return nil, err
	}

	return &models.ModerationResult{
		CommentsDeleted: 1,
		ReportsDeleted:  1,
	}, nil
}
