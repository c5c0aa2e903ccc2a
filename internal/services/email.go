package services

import (
	"context"
	"fmt"
	"log/slog"

	"traininghub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationConfirmation sends the registration confirmation email using
// the "registration_confirmation" template.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render registration_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration confirmation email: %w", err)
	}
	s.logger.InfoContext(ctx, "registration confirmation sent", "email", data.Email, "registration_id", data.RegistrationID)
	return nil
}

// SendContactConfirmation sends the contact form acknowledgement using the
// "contact_confirmation" template.
func (s *emailService) SendContactConfirmation(ctx context.Context, data *domain.ContactConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("contact confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact confirmation email: %w", err)
	}
	s.logger.InfoContext(ctx, "contact confirmation sent", "email", data.Email)
	return nil
}
