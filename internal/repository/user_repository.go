// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	SetBadge(ctx context.Context, email, badge string) error
	SetRole(ctx context.Context, id primitive.ObjectID, role string) error
	ReserveQuota(ctx context.Context, email string) error
	ReleaseQuota(ctx context.Context, email string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	user.CreatedAt = time.Now()
	// postCount must be stored explicitly so the quota filter can match it
	user.PostCount = 0

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindAll returns all users
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// SetBadge updates a user's membership badge
func (r *userRepository) SetBadge(ctx context.Context, email, badge string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"badge": badge}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetRole updates a user's role. Repeated promotion is a no-op.
func (r *userRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ReserveQuota atomically increments a user's post count if the user is still
// allowed to post: Gold members always pass, everyone else must be under the
// free post limit. The check and the increment are a single conditional
// update, so concurrent creations cannot both slip past the limit.
func (r *userRepository) ReserveQuota(ctx context.Context, email string) error {
	filter := bson.M{
		"email": email,
		"$or": bson.A{
			bson.M{"badge": models.BadgeGold},
			bson.M{"postCount": bson.M{"$lt": models.FreePostLimit}},
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"postCount": 1}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrPostQuotaExceeded
	}

	return nil
}

// ReleaseQuota undoes a quota reservation after a failed post insert.
func (r *userRepository) ReleaseQuota(ctx context.Context, email string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email, "postCount": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"postCount": -1}},
	)
	return err
}

// Delete removes a user from the database
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Count returns the number of users
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
