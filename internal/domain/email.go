package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmationEmailData holds data for the registration confirmation email.
type RegistrationConfirmationEmailData struct {
	FirstName       string
	LastName        string
	Email           string
	TrainingTitle   string
	Company         string
	Phone           string
	RegistrationID  string
	PaymentAmount   int64 // minor units
	PaymentCurrency string
}

// ContactConfirmationEmailData holds data for the contact form confirmation email.
type ContactConfirmationEmailData struct {
	Name              string
	Email             string
	Company           string
	Message           string
	SelectedInterests []string
}

// EmailService defines the contract for sending domain-level emails. Both
// sends are fire-and-forget from the caller's perspective: failures are
// logged, never propagated into the registration or contact outcome.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
	SendContactConfirmation(ctx context.Context, data *ContactConfirmationEmailData) error
}
