package repository

import (
	"context"

	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnnouncementRepository defines the interface for announcement data operations
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	FindAll(ctx context.Context) ([]models.Announcement, error)
	Count(ctx context.Context) (int64, error)
}

// announcementRepository implements AnnouncementRepository using MongoDB
type announcementRepository struct {
	collection *mongo.Collection
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *mongo.Database) AnnouncementRepository {
	return &announcementRepository{
		collection: db.Collection("announcements"),
	}
}

// Create inserts a new announcement into the database
func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	result, err := r.collection.InsertOne(ctx, announcement)
	if err != nil {
		return err
	}

	announcement.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns all announcements
func (r *announcementRepository) FindAll(ctx context.Context) ([]models.Announcement, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var announcements []models.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}

	if announcements == nil {
		announcements = []models.Announcement{}
	}

	return announcements, nil
}

// Count returns the number of announcements
func (r *announcementRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
