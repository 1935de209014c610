package payments

import (
	"context"
	"fmt"
)

// MockIntentCreator implements IntentCreator without contacting Stripe.
// Used by local development and API tests.
type MockIntentCreator struct {
	// Err, when set, is returned from every CreateIntent call.
	Err error
}

// NewMockIntentCreator creates a mock payment intent client.
func NewMockIntentCreator() *MockIntentCreator {
	return &MockIntentCreator{}
}

// CreateIntent returns a fake client secret that encodes the requested amount
// and currency so tests can assert on them.
func (m *MockIntentCreator) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}

	return fmt.Sprintf("pi_mock_%d_%s_secret", amount, currency), nil
}

var _ IntentCreator = (*MockIntentCreator)(nil)
