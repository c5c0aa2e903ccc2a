package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"traininghub/internal/cache"
	"traininghub/internal/domain"
)

const adminSubject = "admin"

type adminService struct {
	serviceRepo      domain.TrainingServiceRepository
	sessionRepo      domain.SessionRepository
	registrationRepo domain.RegistrationRepository
	secret           domain.PasswordChecker
	tokens           domain.TokenIssuer
	cache            *cache.Cache
	environment      string
	tokenTTL         time.Duration
	logger           *slog.Logger
	contextTimeout   time.Duration
	now              func() time.Time
}

// NewAdminService wires the password-gated management operations.
func NewAdminService(serviceRepo domain.TrainingServiceRepository,
	sessionRepo domain.SessionRepository,
	registrationRepo domain.RegistrationRepository,
	secret domain.PasswordChecker,
	tokens domain.TokenIssuer,
	c *cache.Cache,
	environment string,
	tokenTTL time.Duration,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AdminService {
	return &adminService{
		serviceRepo:      serviceRepo,
		sessionRepo:      sessionRepo,
		registrationRepo: registrationRepo,
		secret:           secret,
		tokens:           tokens,
		cache:            c,
		environment:      environment,
		tokenTTL:         tokenTTL,
		logger:           logger,
		contextTimeout:   timeout,
		now:              time.Now,
	}
}

// Login exchanges the shared admin secret for a short-lived session token.
func (s *adminService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if err := s.secret.Check(password); err != nil {
		s.logger.WarnContext(ctx, "admin login rejected")
		return "", time.Time{}, domain.ErrUnauthorized
	}
	token, err := s.tokens.Issue(adminSubject, []string{"admin"}, s.tokenTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue admin token: %w", err)
	}
	return token, s.now().Add(s.tokenTTL), nil
}

func (s *adminService) CreateService(ctx context.Context, svc *domain.TrainingService) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if svc.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if svc.BasePrice <= 0 {
		return fmt.Errorf("%w: base price must be positive", domain.ErrInvalidInput)
	}
	now := s.now()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	s.invalidateCatalog(ctx, svc.ID)
	return nil
}

func (s *adminService) UpdateService(ctx context.Context, svc *domain.TrainingService) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return err
	}
	s.invalidateCatalog(ctx, svc.ID)
	return nil
}

func (s *adminService) DeleteService(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx, id)
	return nil
}

func (s *adminService) ListServices(ctx context.Context) ([]*domain.TrainingService, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if services == nil {
		services = []*domain.TrainingService{}
	}
	return services, nil
}

func (s *adminService) CreateSession(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if session.ServiceID == "" {
		return fmt.Errorf("%w: service id is required", domain.ErrInvalidInput)
	}
	if session.MaxCapacity <= 0 {
		return fmt.Errorf("%w: max capacity must be positive", domain.ErrInvalidInput)
	}
	if session.Status == "" {
		session.Status = domain.SessionStatusActive
	}
	now := s.now()
	session.CreatedAt = now
	session.UpdatedAt = now
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.invalidateCatalog(ctx, session.ServiceID)
	return nil
}

func (s *adminService) UpdateSession(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return err
	}
	s.invalidateCatalog(ctx, session.ServiceID)
	return nil
}

func (s *adminService) DeleteSession(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx, session.ServiceID)
	return nil
}

func (s *adminService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

const (
	seedServiceTitle = "AI Fundamentals & ChatGPT Mastery"
	seedSessionCode1 = "TEST001"
	seedSessionCode2 = "TEST002"
	seedSessionCode3 = "TEST003"
)

// SeedTestData creates a demo service with three upcoming sessions and two
// paid registrations. Refused outside development environments.
func (s *adminService) SeedTestData(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if s.environment == "production" {
		return fmt.Errorf("%w: test data seeding is disabled in production", domain.ErrInvalidInput)
	}

	if _, err := s.sessionRepo.GetBySessionCode(ctx, seedSessionCode1); err == nil {
		s.logger.InfoContext(ctx, "test data already present, skipping seed")
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check seeded data: %w", err)
	}

	now := s.now()
	earlyBird := int64(7500)
	svc := &domain.TrainingService{
		Title:          seedServiceTitle,
		Description:    "Hands-on introduction to practical AI: prompting, workflows, and everyday automation.",
		Duration:       "8 hours",
		Level:          "Beginner",
		Format:         "In-person or Virtual",
		BasePrice:      15000,
		EarlyBirdPrice: &earlyBird,
		EarlyBirdDays:  7,
		Features: []string{
			"Live instructor-led workshop",
			"Hands-on prompt engineering labs",
			"Take-home workflow templates",
			"30 days of follow-up Q&A",
		},
		SessionOutline: []string{
			"Morning: AI foundations and capabilities",
			"Midday: prompt engineering deep dive",
			"Afternoon: building personal AI workflows",
		},
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return fmt.Errorf("seed service: %w", err)
	}

	locName := "Downtown Training Center"
	locCity := "Austin"
	locState := "TX"
	virtualLink := "https://meet.example.com/ai-fundamentals"
	sessions := []*domain.Session{
		{
			ServiceID:     svc.ID,
			SessionCode:   seedSessionCode1,
			Date:          now.AddDate(0, 0, 30),
			TimeOfDay:     "9:00 AM - 5:00 PM",
			MaxCapacity:   12,
			Status:        domain.SessionStatusActive,
			LocationName:  &locName,
			LocationCity:  &locCity,
			LocationState: &locState,
		},
		{
			ServiceID:   svc.ID,
			SessionCode: seedSessionCode2,
			Date:        now.AddDate(0, 0, 14),
			TimeOfDay:   "9:00 AM - 5:00 PM",
			MaxCapacity: 10,
			Status:      domain.SessionStatusActive,
			IsVirtual:   true,
			VirtualLink: &virtualLink,
		},
		{
			// Inside the early-bird cutoff: quotes at base price.
			ServiceID:   svc.ID,
			SessionCode: seedSessionCode3,
			Date:        now.AddDate(0, 0, 3),
			TimeOfDay:   "9:00 AM - 1:00 PM",
			MaxCapacity: 8,
			Status:      domain.SessionStatusActive,
			IsVirtual:   true,
			VirtualLink: &virtualLink,
		},
	}
	for _, session := range sessions {
		session.CreatedAt = now
		session.UpdatedAt = now
		if err := s.sessionRepo.Create(ctx, session); err != nil {
			return fmt.Errorf("seed session %s: %w", session.SessionCode, err)
		}
	}

	amount := int64(7500)
	currency := paymentCurrency
	for i, attendee := range []struct {
		first, last, email, intentID string
	}{
		{"Alice", "Nguyen", "alice@example.com", "pi_test_seed_001"},
		{"Marcus", "Webb", "marcus@example.com", "pi_test_seed_002"},
	} {
		intentID := attendee.intentID
		reg := &domain.Registration{
			SessionID:             sessions[0].ID,
			TrainingTitle:         svc.Title,
			FirstName:             attendee.first,
			LastName:              attendee.last,
			Email:                 attendee.email,
			Status:                domain.RegistrationStatusConfirmed,
			PaymentStatus:         domain.PaymentStatePaid,
			StripePaymentIntentID: &intentID,
			PaymentAmount:         &amount,
			PaymentCurrency:       &currency,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := s.registrationRepo.CreateConfirmed(ctx, reg); err != nil && !errors.Is(err, domain.ErrDuplicateRegistration) {
			return fmt.Errorf("seed registration %d: %w", i+1, err)
		}
	}

	s.invalidateCatalog(ctx, svc.ID)
	s.logger.InfoContext(ctx, "test data seeded", "service_id", svc.ID)
	return nil
}

// ClearTestData deletes the seeded demo service; sessions and registrations
// go with it via cascade. Refused outside development environments.
func (s *adminService) ClearTestData(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if s.environment == "production" {
		return fmt.Errorf("%w: test data clearing is disabled in production", domain.ErrInvalidInput)
	}

	session, err := s.sessionRepo.GetBySessionCode(ctx, seedSessionCode1)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("locate seeded data: %w", err)
	}
	if err := s.serviceRepo.Delete(ctx, session.ServiceID); err != nil {
		return fmt.Errorf("delete seeded service: %w", err)
	}
	s.invalidateCatalog(ctx, session.ServiceID)
	s.logger.InfoContext(ctx, "test data cleared", "service_id", session.ServiceID)
	return nil
}

func (s *adminService) invalidateCatalog(ctx context.Context, serviceID string) {
	if s.cache == nil {
		return
	}
	keys := []string{cacheKeyServices, cacheKeySessions}
	if serviceID != "" {
		keys = append(keys, cacheKeySessions+":"+serviceID)
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "catalog cache invalidation failed", "err", err)
	}
}
