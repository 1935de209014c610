package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context, sortOption, searchTerm string) ([]models.Post, error)
	FindByAuthor(ctx context.Context, email string, limit int64) ([]models.Post, error)
	SetVotes(ctx context.Context, id primitive.ObjectID, upVote, downVote int) error
	IncrementComments(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// postRepository implements PostRepository using MongoDB
type postRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{
		collection: db.Collection("posts"),
	}
}

// Create inserts a new post into the database
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.Time.IsZero() {
		post.Time = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}

	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a post by its ID
func (r *postRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// List returns posts through an aggregation pipeline that derives
// voteDifference = upVote - downVote, filters tags by case-insensitive
// substring, and sorts by time ("latest") or voteDifference ("popularity").
func (r *postRepository) List(ctx context.Context, sortOption, searchTerm string) ([]models.Post, error) {
	sort := bson.D{{Key: "time", Value: -1}}
	if sortOption == models.SortPopularity {
		sort = bson.D{{Key: "voteDifference", Value: -1}}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "voteDifference", Value: bson.D{
				{Key: "$subtract", Value: bson.A{"$upVote", "$downVote"}},
			}},
		}}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "tags", Value: primitive.Regex{Pattern: regexp.QuoteMeta(searchTerm), Options: "i"}},
		}}},
		bson.D{{Key: "$sort", Value: sort}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// FindByAuthor returns an author's posts, newest first.
// A limit of 0 returns all of them.
func (r *postRepository) FindByAuthor(ctx context.Context, email string, limit int64) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"author.email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// SetVotes overwrites a post's vote counters
func (r *postRepository) SetVotes(ctx context.Context, id primitive.ObjectID, upVote, downVote int) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"upVote": upVote, "downVote": downVote}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// IncrementComments increments a post's comment counter by 1
func (r *postRepository) IncrementComments(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"commentsCount": 1}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Delete removes a post from the database
func (r *postRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Count returns the number of posts
func (r *postRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
