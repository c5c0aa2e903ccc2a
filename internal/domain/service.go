package domain

import (
	"context"
	"time"
)

// TrainingService represents a training offering (the "services" table).
// Prices are integer minor units (cents), matching the amounts sent to the
// payment provider.
// swagger:model TrainingService
type TrainingService struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Duration       string    `json:"duration"`
	Level          string    `json:"level"`
	Format         string    `json:"format"`
	BasePrice      int64     `json:"base_price"`
	EarlyBirdPrice *int64    `json:"early_bird_price,omitempty"`
	EarlyBirdDays  int       `json:"early_bird_days"`
	Features       []string  `json:"features"`
	SessionOutline []string  `json:"session_outline,omitempty"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TrainingServiceRepository defines storage operations for training services.
type TrainingServiceRepository interface {
	Create(ctx context.Context, svc *TrainingService) error
	Update(ctx context.Context, svc *TrainingService) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*TrainingService, error)
	// ListAvailable returns services with available = true, newest first.
	ListAvailable(ctx context.Context) ([]*TrainingService, error)
	// List returns all services regardless of availability, newest first.
	List(ctx context.Context) ([]*TrainingService, error)
}

// PriceQuote is the result of the pricing computation for one session as of a
// given instant. FinalPrice is what the attendee owes right now.
type PriceQuote struct {
	BasePrice        int64  `json:"base_price"`
	FinalPrice       int64  `json:"final_price"`
	DiscountAmount   int64  `json:"discount_amount"`
	DiscountType     string `json:"discount_type"`
	IsEarlyBird      bool   `json:"is_early_bird"`
	DaysUntilSession int    `json:"days_until_session"`
}

// Discount types reported in PriceQuote.DiscountType.
const (
	DiscountTypeBase      = "base"
	DiscountTypeEarlyBird = "early_bird"
)

// SessionQuote bundles a session with its owning service and the current quote.
type SessionQuote struct {
	Session *Session         `json:"session"`
	Service *TrainingService `json:"service"`
	Quote   PriceQuote       `json:"quote"`
}

// CatalogService defines the visitor-facing read-only catalog operations.
type CatalogService interface {
	ListServices(ctx context.Context) ([]*TrainingService, error)
	// ListSessions returns active, future sessions ordered by date ascending,
	// optionally filtered to one service. Capacity is reported, not enforced.
	ListSessions(ctx context.Context, serviceID string) ([]*Session, error)
	// GetSessionQuote resolves a session reference (durable id or
	// human-readable code) and returns the session with its current price.
	GetSessionQuote(ctx context.Context, sessionRef string) (*SessionQuote, error)
}
