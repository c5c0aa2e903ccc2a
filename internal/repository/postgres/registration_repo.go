package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"traininghub/internal/domain"
)

// uniqueViolation is the Postgres error code raised by the unique index on
// training_registrations.stripe_payment_intent_id.
const uniqueViolation = "23505"

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a RegistrationRepository backed by Postgres.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

const registrationColumns = `id, session_id, training_title, first_name, last_name, email, company, phone, job_title, experience_level, expectations,
	status, payment_status, stripe_payment_intent_id, stripe_customer_id, payment_amount, payment_currency, payment_receipt_url, created_at, updated_at`

func scanRegistration(row interface{ Scan(...any) error }) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var (
		company, phone, jobTitle, expLevel, expectations sql.NullString
		intentID, customerID, currency, receiptURL       sql.NullString
		amount                                           sql.NullInt64
	)
	err := row.Scan(
		&reg.ID, &reg.SessionID, &reg.TrainingTitle, &reg.FirstName, &reg.LastName, &reg.Email,
		&company, &phone, &jobTitle, &expLevel, &expectations,
		&reg.Status, &reg.PaymentStatus,
		&intentID, &customerID, &amount, &currency, &receiptURL,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	reg.Company = nullString(company)
	reg.Phone = nullString(phone)
	reg.JobTitle = nullString(jobTitle)
	reg.ExperienceLevel = nullString(expLevel)
	reg.Expectations = nullString(expectations)
	reg.StripePaymentIntentID = nullString(intentID)
	reg.StripeCustomerID = nullString(customerID)
	reg.PaymentCurrency = nullString(currency)
	reg.PaymentReceiptURL = nullString(receiptURL)
	if amount.Valid {
		reg.PaymentAmount = &amount.Int64
	}
	return reg, nil
}

// CreateConfirmed persists a paid registration and claims one seat in a
// single transaction. The occupancy increment is a conditional UPDATE, not a
// read-then-write, so concurrent registrations for the same session cannot
// push current_registrations past max_capacity.
func (r *registrationRepository) CreateConfirmed(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	claim := `
		UPDATE sessions
		SET current_registrations = current_registrations + 1, updated_at = NOW()
		WHERE id = $1 AND status = 'active' AND current_registrations < max_capacity
	`
	result, err := tx.ExecContext(ctx, claim, reg.SessionID)
	if err != nil {
		return fmt.Errorf("claim seat: %w", err)
	}
	claimed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("claim seat: %w", err)
	}
	if claimed == 0 {
		// Distinguish a full session from a missing or inactive one.
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM sessions WHERE id = $1 AND status = 'active')`,
			reg.SessionID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check session: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrSessionFull
	}

	insert := `
		INSERT INTO training_registrations (session_id, training_title, first_name, last_name, email, company, phone, job_title, experience_level, expectations,
			status, payment_status, stripe_payment_intent_id, stripe_customer_id, payment_amount, payment_currency, payment_receipt_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, insert,
		reg.SessionID, reg.TrainingTitle, reg.FirstName, reg.LastName, reg.Email,
		reg.Company, reg.Phone, reg.JobTitle, reg.ExperienceLevel, reg.Expectations,
		reg.Status, reg.PaymentStatus,
		reg.StripePaymentIntentID, reg.StripeCustomerID,
		reg.PaymentAmount, reg.PaymentCurrency, reg.PaymentReceiptURL,
		reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateRegistration
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *registrationRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM training_registrations WHERE stripe_payment_intent_id = $1`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, paymentIntentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM training_registrations WHERE email = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
