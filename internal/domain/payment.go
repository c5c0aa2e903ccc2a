package domain

import "context"

// PaymentIntentStatus values reported by the payment provider. Only
// PaymentIntentSucceeded permits finalization.
const (
	PaymentIntentSucceeded      = "succeeded"
	PaymentIntentRequiresAction = "requires_action"
)

// PaymentIntentParams are the inputs for creating a payment authorization
// request. Amount is in minor currency units.
type PaymentIntentParams struct {
	Amount        int64
	Currency      string
	CustomerEmail string
	CustomerName  string
	TrainingTitle string
	SessionRef    string
}

// PaymentIntent is the provider-side view of a payment authorization.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	CustomerID   string
	ReceiptURL   string
}

// PaymentProvider abstracts the card-payment processor (infrastructure port).
// GetIntent is the server-side verification call: finalization trusts only
// its reported status, never a client claim.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error)
	GetIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
	// CreateCustomer registers a provider-side customer record for receipts
	// and audit. Best effort: callers must not fail registration on error.
	CreateCustomer(ctx context.Context, email, name string) (string, error)
}
