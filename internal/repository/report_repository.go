package repository

import (
	"context"
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	FindAll(ctx context.Context) ([]models.Report, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// reportRepository implements ReportRepository using MongoDB
type reportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *mongo.Database) ReportRepository {
	return &reportRepository{
		collection: db.Collection("reports"),
	}
}

// Create inserts a new report into the database
func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}

	report.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a report by its ID
func (r *reportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

// FindAll returns all reports
func (r *reportRepository) FindAll(ctx context.Context) ([]models.Report, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	if reports == nil {
		reports = []models.Report{}
	}

	return reports, nil
}

// Delete removes a report from the database
func (r *reportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrReportNotFound
	}

	return nil
}
