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

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	FindByValue(ctx context.Context, value string) (*models.Tag, error)
	FindAll(ctx context.Context) ([]models.Tag, error)
}

// tagRepository implements TagRepository using MongoDB
type tagRepository struct {
	collection *mongo.Collection
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *mongo.Database) TagRepository {
	return &tagRepository{
		collection: db.Collection("tags"),
	}
}

// Create inserts a new tag into the database
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	result, err := r.collection.InsertOne(ctx, tag)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTagAlreadyExists
		}
		return err
	}

	tag.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByValue finds a tag by its value
func (r *tagRepository) FindByValue(ctx context.Context, value string) (*models.Tag, error) {
	var tag models.Tag

	err := r.collection.FindOne(ctx, bson.M{"tag": value}).Decode(&tag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, err
	}

	return &tag, nil
}

// FindAll returns all tags
func (r *tagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []models.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []models.Tag{}
	}

	return tags, nil
}
