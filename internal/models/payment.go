package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment represents a completed transaction.
type Payment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email         string             `json:"email" bson:"email" example:"user@example.com"`
	Price         float64            `json:"price" bson:"price" example:"10"`
	TransactionID string             `json:"transactionId" bson:"transactionId" example:"pi_3OaX2eEZvKYlo2C50"`
	CartIDs       []string           `json:"cartIds,omitempty" bson:"cartIds,omitempty"`
	Date          time.Time          `json:"date" bson:"date" example:"2024-01-15T09:30:00Z"`
}

// CreatePaymentIntentRequest is the payload for creating a payment intent.
// Price is accepted for forward compatibility but the charged amount is fixed
// server-side.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"omitempty,gt=0" example:"10"`
}

// CreatePaymentIntentResponse carries the provider's client secret.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret" example:"pi_3OaX2eEZvKYlo2C50_secret_x"`
}

// RecordPaymentRequest is the payload for recording a completed payment.
type RecordPaymentRequest struct {
	Email         string   `json:"email" binding:"required,email" example:"user@example.com"`
	Price         float64  `json:"price" binding:"required,gt=0" example:"10"`
	TransactionID string   `json:"transactionId" binding:"required" example:"pi_3OaX2eEZvKYlo2C50"`
	CartIDs       []string `json:"cartIds" binding:"omitempty,dive,objectid"`
}

// RecordPaymentResponse reports the stored payment and any cart purge result.
type RecordPaymentResponse struct {
	InsertedID   primitive.ObjectID `json:"insertedId" example:"507f1f77bcf86cd799439011"`
	CartsDeleted int64              `json:"cartsDeleted" example:"2"`
}
