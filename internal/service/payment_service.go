package service

import (
	"context"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/payments"
	"forum-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// paymentIntentAmount is the charged amount in minor units. The membership
// price is fixed server-side; the request's price field is ignored, which is
// the contract the existing clients were built against.
const paymentIntentAmount = 1000

const paymentCurrency = "usd"

// PaymentService handles payment intents, payment records and the cart purge
// that follows a recorded payment.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	intents     payments.IntentCreator
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository, cartRepo repository.CartRepository, intents payments.IntentCreator) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		intents:     intents,
	}
}

// CreateIntent creates a payment intent with the provider and returns its
// client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, req *models.CreatePaymentIntentRequest) (*models.CreatePaymentIntentResponse, error) {
	clientSecret, err := s.intents.CreateIntent(ctx, paymentIntentAmount, paymentCurrency)
	if err != nil {
		return nil, err
	}

	return &models.CreatePaymentIntentResponse{ClientSecret: clientSecret}, nil
}

// RecordPayment stores a completed payment and purges any cart items the
// payment references.
func (s *PaymentService) RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.RecordPaymentResponse, error) {
	payment := &models.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CartIDs:       req.CartIDs,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	var cartsDeleted int64
	if len(req.CartIDs) > 0 {
		ids := make([]primitive.ObjectID, 0, len(req.CartIDs))
		for _, raw := range req.CartIDs {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return nil, apperrors.ErrInvalidCartItem
			}
			ids = append(ids, id)
		}

		deleted, err := s.cartRepo.DeleteByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		cartsDeleted = deleted
	}

	return &models.RecordPaymentResponse{
		InsertedID:   payment.ID,
		CartsDeleted: cartsDeleted,
	}, nil
}

// History returns a user's payment history, newest first.
func (s *PaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	return s.paymentRepo.FindByEmail(ctx, email)
}
