package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"traininghub/internal/domain"
	"traininghub/internal/monitoring"
	"traininghub/internal/pricing"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const paymentCurrency = "usd"

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	sessionRepo      domain.SessionRepository
	serviceRepo      domain.TrainingServiceRepository
	contactRepo      domain.ContactRepository
	payments         domain.PaymentProvider
	emailService     domain.EmailService
	logger           *slog.Logger
	contextTimeout   time.Duration
	now              func() time.Time
}

// NewRegistrationService wires the registration workflow: payment intent
// creation, finalization, and status lookup.
func NewRegistrationService(registrationRepo domain.RegistrationRepository,
	sessionRepo domain.SessionRepository,
	serviceRepo domain.TrainingServiceRepository,
	contactRepo domain.ContactRepository,
	payments domain.PaymentProvider,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		sessionRepo:      sessionRepo,
		serviceRepo:      serviceRepo,
		contactRepo:      contactRepo,
		payments:         payments,
		emailService:     emailService,
		logger:           logger,
		contextTimeout:   timeout,
		now:              time.Now,
	}
}

// CreatePaymentIntent resolves the session, recomputes the price from stored
// data, and asks the provider for a payment authorization. The client-supplied
// request never carries an amount.
func (s *registrationService) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	session, err := resolveSessionRef(ctx, s.sessionRepo, req.SessionRef)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if session.Status != domain.SessionStatusActive {
		return nil, fmt.Errorf("%w: session is not open for registration", domain.ErrInvalidInput)
	}
	if session.Date.Before(now) {
		return nil, fmt.Errorf("%w: session date has passed", domain.ErrInvalidInput)
	}
	if session.SpotsRemaining() == 0 {
		return nil, domain.ErrSessionFull
	}

	svc, err := s.serviceRepo.GetByID(ctx, session.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service for session: %w", err)
	}
	quote := pricing.Quote(svc, session.Date, now)

	intent, err := s.payments.CreateIntent(ctx, domain.PaymentIntentParams{
		Amount:        quote.FinalPrice,
		Currency:      paymentCurrency,
		CustomerEmail: email,
		CustomerName:  strings.TrimSpace(req.FirstName + " " + req.LastName),
		TrainingTitle: svc.Title,
		SessionRef:    session.ID,
	})
	if err != nil {
		monitoring.TrackPaymentFailure("intent_create")
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &domain.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Quote:           quote,
	}, nil
}

// Finalize turns a provider-verified payment into a confirmed registration.
// The provider's reported status is the only accepted evidence of payment.
func (s *registrationService) Finalize(ctx context.Context, paymentIntentID string, details domain.RegistrationDetails) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(paymentIntentID) == "" {
		return nil, fmt.Errorf("%w: payment intent id is required", domain.ErrInvalidInput)
	}
	if err := validateDetails(&details); err != nil {
		return nil, err
	}

	intent, err := s.payments.GetIntent(ctx, paymentIntentID)
	if err != nil {
		monitoring.TrackPaymentFailure("verification")
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	if intent.Status != domain.PaymentIntentSucceeded {
		monitoring.TrackPaymentFailure("verification")
		s.logger.WarnContext(ctx, "payment not in succeeded state",
			"payment_intent_id", intent.ID, "status", intent.Status)
		return nil, domain.ErrPaymentNotVerified
	}

	customerID := intent.CustomerID
	if customerID == "" {
		id, err := s.payments.CreateCustomer(ctx, details.Email, details.FirstName+" "+details.LastName)
		if err != nil {
			s.logger.WarnContext(ctx, "customer creation failed, continuing without",
				"email", details.Email, "err", err)
		} else {
			customerID = id
		}
	}

	session, err := resolveSessionRef(ctx, s.sessionRepo, details.SessionRef)
	if err != nil {
		monitoring.TrackPaymentFailure("persistence")
		monitoring.TrackOrphanedPayment()
		s.logger.ErrorContext(ctx, "verified payment references an unresolvable session",
			"payment_intent_id", intent.ID, "session_ref", details.SessionRef, "err", err)
		return nil, &domain.OrphanedPaymentError{PaymentIntentID: intent.ID, Err: err}
	}
	svc, err := s.serviceRepo.GetByID(ctx, session.ServiceID)
	if err != nil {
		monitoring.TrackPaymentFailure("persistence")
		monitoring.TrackOrphanedPayment()
		s.logger.ErrorContext(ctx, "verified payment references an unresolvable service",
			"payment_intent_id", intent.ID, "service_id", session.ServiceID, "err", err)
		return nil, &domain.OrphanedPaymentError{PaymentIntentID: intent.ID, Err: err}
	}

	quote := pricing.Quote(svc, session.Date, s.now())
	if intent.Amount != quote.FinalPrice {
		// Legitimate when the early-bird window closed between intent and
		// confirmation; the charged amount stands.
		s.logger.WarnContext(ctx, "paid amount differs from current quote",
			"payment_intent_id", intent.ID, "paid", intent.Amount, "quoted", quote.FinalPrice)
	}

	title := strings.TrimSpace(details.TrainingTitle)
	if title == "" {
		title = svc.Title
	}

	reg := &domain.Registration{
		SessionID:       session.ID,
		TrainingTitle:   title,
		FirstName:       strings.TrimSpace(details.FirstName),
		LastName:        strings.TrimSpace(details.LastName),
		Email:           strings.TrimSpace(strings.ToLower(details.Email)),
		Company:         details.Company,
		Phone:           details.Phone,
		JobTitle:        details.JobTitle,
		ExperienceLevel: details.ExperienceLevel,
		Expectations:    details.Expectations,
		Status:          domain.RegistrationStatusConfirmed,
		PaymentStatus:   domain.PaymentStatePaid,

		StripePaymentIntentID: &intent.ID,
		PaymentAmount:         &intent.Amount,
		PaymentCurrency:       &intent.Currency,

		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	if customerID != "" {
		reg.StripeCustomerID = &customerID
	}
	if intent.ReceiptURL != "" {
		reg.PaymentReceiptURL = &intent.ReceiptURL
	}

	if err := s.registrationRepo.CreateConfirmed(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			existing, lookupErr := s.registrationRepo.GetByPaymentIntentID(ctx, intent.ID)
			if lookupErr != nil {
				return nil, fmt.Errorf("load existing registration: %w", lookupErr)
			}
			s.logger.InfoContext(ctx, "duplicate finalize, returning existing registration",
				"payment_intent_id", intent.ID, "registration_id", existing.ID)
			return existing, nil
		}
		monitoring.TrackPaymentFailure("persistence")
		monitoring.TrackOrphanedPayment()
		s.logger.ErrorContext(ctx, "verified payment could not be persisted",
			"payment_intent_id", intent.ID, "session_id", session.ID, "err", err)
		return nil, &domain.OrphanedPaymentError{PaymentIntentID: intent.ID, Err: err}
	}

	monitoring.TrackRegistration(quote.DiscountType)

	if err := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
		FirstName:       reg.FirstName,
		LastName:        reg.LastName,
		Email:           reg.Email,
		TrainingTitle:   reg.TrainingTitle,
		Company:         deref(reg.Company),
		Phone:           deref(reg.Phone),
		RegistrationID:  reg.ID,
		PaymentAmount:   intent.Amount,
		PaymentCurrency: intent.Currency,
	}); err != nil {
		s.logger.ErrorContext(ctx, "confirmation email failed",
			"registration_id", reg.ID, "email", reg.Email, "err", err)
	}

	return reg, nil
}

// LookupStatus returns the registrations and contact submissions for an email.
func (s *registrationService) LookupStatus(ctx context.Context, email string) (*domain.StatusReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	registrations, err := s.registrationRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if registrations == nil {
		registrations = []*domain.Registration{}
	}
	contacts, err := s.contactRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	if contacts == nil {
		contacts = []*domain.ContactSubmission{}
	}
	return &domain.StatusReport{Registrations: registrations, ContactSubmissions: contacts}, nil
}

func validateDetails(d *domain.RegistrationDetails) error {
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(d.Email))) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(d.SessionRef) == "" {
		return fmt.Errorf("%w: session reference is required", domain.ErrInvalidInput)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
