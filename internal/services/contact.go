package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"traininghub/internal/domain"
)

type contactService struct {
	contactRepo    domain.ContactRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewContactService returns the contact form intake service.
func NewContactService(contactRepo domain.ContactRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.ContactService {
	return &contactService{
		contactRepo:    contactRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Submit persists an inbound inquiry and acknowledges it by email. The
// acknowledgement is best effort: the submission stands even when the email
// fails.
func (s *contactService) Submit(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sub.FirstName = strings.TrimSpace(sub.FirstName)
	sub.LastName = strings.TrimSpace(sub.LastName)
	sub.Email = strings.TrimSpace(strings.ToLower(sub.Email))
	sub.Message = strings.TrimSpace(sub.Message)

	if sub.FirstName == "" || sub.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(sub.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if sub.Message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	sub.Status = domain.ContactStatusNew
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if err := s.contactRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}

	if err := s.emailService.SendContactConfirmation(ctx, &domain.ContactConfirmationEmailData{
		Name:              sub.FirstName + " " + sub.LastName,
		Email:             sub.Email,
		Company:           deref(sub.Company),
		Message:           sub.Message,
		SelectedInterests: sub.TrainingInterests,
	}); err != nil {
		s.logger.ErrorContext(ctx, "contact confirmation email failed",
			"submission_id", sub.ID, "email", sub.Email, "err", err)
	}

	return sub, nil
}
