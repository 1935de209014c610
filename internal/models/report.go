package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report represents a user-submitted moderation report.
// CommentID is an optional weak reference to the reported comment; the
// referenced comment may have been deleted since the report was filed.
type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	CommentID   primitive.ObjectID `json:"commentId,omitempty" bson:"commentId,omitempty" example:"65a1f77bcf86cd7994390abc"`
	CommentText string             `json:"commentText,omitempty" bson:"commentText,omitempty" example:"offending comment text"`
	Feedback    string             `json:"feedback" bson:"feedback" example:"spam"`
	ReportedBy  string             `json:"reportedBy" bson:"reportedBy" example:"user@example.com"`
}

// CreateReportRequest is the payload for submitting a report.
type CreateReportRequest struct {
	CommentID   string `json:"commentId" binding:"omitempty,objectid" example:"65a1f77bcf86cd7994390abc"`
	CommentText string `json:"commentText" binding:"omitempty" example:"offending comment text"`
	Feedback    string `json:"feedback" binding:"required,min=1" example:"spam"`
	ReportedBy  string `json:"reportedBy" binding:"required,email" example:"user@example.com"`
}

// CreateReportResponse reports the stored report's id.
type CreateReportResponse struct {
	InsertedID primitive.ObjectID `json:"insertedId" example:"507f1f77bcf86cd799439011"`
}

// ModerationResult reports the outcome of a report-driven comment deletion.
type ModerationResult struct {
	CommentsDeleted int64 `json:"commentsDeleted" example:"1"`
	ReportsDeleted  int64 `json:"reportsDeleted" example:"1"`
}
