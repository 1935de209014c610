package repository

import (
	"context"
	"time"

	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// paymentRepository implements PaymentRepository using MongoDB
type paymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{
		collection: db.Collection("payments"),
	}
}

// Create inserts a new payment record into the database
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return err
	}

	payment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByEmail returns a user's payment history, newest first
func (r *paymentRepository) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	if payments == nil {
		payments = []models.Payment{}
	}

	return payments, nil
}
