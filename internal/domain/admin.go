package domain

import (
	"context"
	"time"
)

// TokenIssuer signs short-lived admin session tokens.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier validates an admin session token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordChecker verifies the shared admin secret.
type PasswordChecker interface {
	Check(password string) error
}

// AdminService defines the password-gated management operations. Login
// exchanges the shared admin secret for a server-issued session token;
// everything else requires a verified token (enforced by middleware).
type AdminService interface {
	// Login returns a signed session token, or ErrUnauthorized when the
	// password does not match the configured secret.
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)

	CreateService(ctx context.Context, svc *TrainingService) error
	UpdateService(ctx context.Context, svc *TrainingService) error
	DeleteService(ctx context.Context, id string) error
	ListServices(ctx context.Context) ([]*TrainingService, error)

	CreateSession(ctx context.Context, session *Session) error
	UpdateSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]*Session, error)

	// SeedTestData creates the synthetic demo service, sessions, and
	// registrations. Refused outside development environments.
	SeedTestData(ctx context.Context) error
	// ClearTestData removes the seeded demo service and everything under it.
	// Refused outside development environments.
	ClearTestData(ctx context.Context) error
}
