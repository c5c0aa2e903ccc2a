package domain

import (
	"context"
	"time"
)

// SessionStatus is the lifecycle state of a scheduled session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCancelled SessionStatus = "cancelled"
	SessionStatusCompleted SessionStatus = "completed"
)

// Session represents one scheduled occurrence of a training service.
//
// ID is the durable identity (UUID, storage-layer primary reference).
// SessionCode is the separate human-readable code (e.g. "TEST001") shown to
// attendees. The two must never be conflated; internal references use ID
// exclusively, and the code is accepted only at the finalize boundary.
// swagger:model Session
type Session struct {
	ID                   string        `json:"id"`
	ServiceID            string        `json:"service_id"`
	SessionCode          string        `json:"session_code"`
	Date                 time.Time     `json:"date"`
	TimeOfDay            string        `json:"time"`
	MaxCapacity          int           `json:"max_capacity"`
	CurrentRegistrations int           `json:"current_registrations"`
	Status               SessionStatus `json:"status"`
	// ServiceTitle is the owning service's title, joined in by the repository
	// for listing. Not a column of the sessions table.
	ServiceTitle string `json:"service_title,omitempty"`

	// Location: either the physical address fields or the virtual fields are
	// set, never both.
	LocationName        *string    `json:"location_name,omitempty"`
	LocationAddress     *string    `json:"location_address,omitempty"`
	LocationCity        *string    `json:"location_city,omitempty"`
	LocationState       *string    `json:"location_state,omitempty"`
	LocationZip         *string    `json:"location_zip,omitempty"`
	LocationPhone       *string    `json:"location_phone,omitempty"`
	LocationNotes       *string    `json:"location_notes,omitempty"`
	IsVirtual           bool       `json:"is_virtual"`
	VirtualLink         *string    `json:"virtual_link,omitempty"`
	LocationConfirmedBy *time.Time `json:"location_confirmed_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpotsRemaining returns the number of unclaimed seats, never negative.
func (s *Session) SpotsRemaining() int {
	remaining := s.MaxCapacity - s.CurrentRegistrations
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SessionRepository defines storage operations for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Session, error)
	GetBySessionCode(ctx context.Context, code string) (*Session, error)
	// ListUpcoming returns sessions with status = active and date >= now,
	// ordered by date ascending, annotated with the owning service title.
	// serviceID filters to one service when non-empty.
	ListUpcoming(ctx context.Context, serviceID string) ([]*Session, error)
	// List returns all sessions (admin view), date descending.
	List(ctx context.Context) ([]*Session, error)
}
