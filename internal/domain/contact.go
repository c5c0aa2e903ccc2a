package domain

import (
	"context"
	"time"
)

// ContactStatus is the handling state of a contact submission.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusResponded ContactStatus = "responded"
	ContactStatusClosed    ContactStatus = "closed"
)

// ContactSubmission is an inbound inquiry from the contact form.
// swagger:model ContactSubmission
type ContactSubmission struct {
	ID                string        `json:"id"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	Email             string        `json:"email"`
	Company           *string       `json:"company,omitempty"`
	Phone             *string       `json:"phone,omitempty"`
	TrainingInterests []string      `json:"training_interests,omitempty"`
	Message           string        `json:"message"`
	Status            ContactStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ContactRepository defines storage operations for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, sub *ContactSubmission) error
	// ListByEmail returns the submissions for an email, newest first.
	ListByEmail(ctx context.Context, email string) ([]*ContactSubmission, error)
}

// ContactService handles inbound contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, sub *ContactSubmission) (*ContactSubmission, error)
}
