package repository

import (
	"context"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByPostTitle(ctx context.Context, postTitle string) ([]models.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// commentRepository implements CommentRepository using MongoDB
type commentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{
		collection: db.Collection("comments"),
	}
}

// Create inserts a new comment into the database
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return err
	}

	comment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByPostTitle returns all comments referencing a post title.
// The title is a weak reference, so this may legitimately return comments for
// a post that no longer exists.
func (r *commentRepository) FindByPostTitle(ctx context.Context, postTitle string) ([]models.Comment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"postTitle": postTitle})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	return comments, nil
}

// Delete removes a comment from the database
func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}

// Count returns the number of comments
func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
