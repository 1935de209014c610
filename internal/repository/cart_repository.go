package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository defines the interface for cart item data operations.
// Cart items are purged after a payment that references them is recorded.
type CartRepository interface {
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// cartRepository implements CartRepository using MongoDB
type cartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{
		collection: db.Collection("carts"),
	}
}

// DeleteByIDs removes the cart items with the given ids and returns how many
// documents were actually deleted. Missing ids are not an error.
func (r *cartRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
