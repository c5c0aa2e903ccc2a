package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the lifecycle state of a registration.
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// PaymentState is the payment state of a registration.
type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStatePaid    PaymentState = "paid"
)

// Registration is one attendee's signup for a session. A registration with
// payment_status = paid always carries the verified payment intent reference;
// a client-asserted success is never trusted.
// swagger:model Registration
type Registration struct {
	ID              string             `json:"id"`
	SessionID       string             `json:"session_id"`
	TrainingTitle   string             `json:"training_title"`
	FirstName       string             `json:"first_name"`
	LastName        string             `json:"last_name"`
	Email           string             `json:"email"`
	Company         *string            `json:"company,omitempty"`
	Phone           *string            `json:"phone,omitempty"`
	JobTitle        *string            `json:"job_title,omitempty"`
	ExperienceLevel *string            `json:"experience_level,omitempty"`
	Expectations    *string            `json:"expectations,omitempty"`
	Status          RegistrationStatus `json:"status"`
	PaymentStatus   PaymentState       `json:"payment_status"`

	StripePaymentIntentID *string `json:"stripe_payment_intent_id,omitempty"`
	StripeCustomerID      *string `json:"stripe_customer_id,omitempty"`
	PaymentAmount         *int64  `json:"payment_amount,omitempty"`
	PaymentCurrency       *string `json:"payment_currency,omitempty"`
	PaymentReceiptURL     *string `json:"payment_receipt_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// CreateConfirmed atomically increments the session occupancy (only while
	// current_registrations < max_capacity and the session is active) and
	// inserts the registration row in the same transaction. Returns
	// ErrSessionFull when the session is at capacity, ErrNotFound when the
	// session row is gone, and ErrDuplicateRegistration when a row with the
	// same payment intent reference already exists.
	CreateConfirmed(ctx context.Context, reg *Registration) error
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*Registration, error)
	// ListByEmail returns the registrations for an email, newest first.
	ListByEmail(ctx context.Context, email string) ([]*Registration, error)
}

// RegistrationDetails carries the attendee form fields for a registration.
type RegistrationDetails struct {
	SessionRef      string
	TrainingTitle   string
	FirstName       string
	LastName        string
	Email           string
	Company         *string
	Phone           *string
	JobTitle        *string
	ExperienceLevel *string
	Expectations    *string
}

// PaymentIntentRequest is the input for server-side intent creation. The
// amount is deliberately absent: it is recomputed from the stored session
// date and service pricing, never accepted from the client.
type PaymentIntentRequest struct {
	SessionRef string
	Email      string
	FirstName  string
	LastName   string
}

// PaymentIntentResponse is returned to the client to drive card confirmation.
type PaymentIntentResponse struct {
	ClientSecret    string     `json:"client_secret"`
	PaymentIntentID string     `json:"payment_intent_id"`
	Amount          int64      `json:"amount"`
	Currency        string     `json:"currency"`
	Quote           PriceQuote `json:"quote"`
}

// StatusReport is the result of a status lookup for one email.
type StatusReport struct {
	Registrations      []*Registration      `json:"registrations"`
	ContactSubmissions []*ContactSubmission `json:"contact_submissions"`
}

// RegistrationService defines the registration workflow: server-side payment
// intent creation, finalization of a verified payment into a persisted
// registration, and status lookup.
type RegistrationService interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntentResponse, error)
	// Finalize verifies the payment with the provider, resolves the session
	// reference, persists the registration with an atomic occupancy
	// increment, and dispatches the confirmation email. Safe to call twice
	// with the same payment reference; the second call returns the existing
	// registration.
	Finalize(ctx context.Context, paymentIntentID string, details RegistrationDetails) (*Registration, error)
	LookupStatus(ctx context.Context, email string) (*StatusReport, error)
}
