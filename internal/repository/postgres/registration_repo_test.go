package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub/internal/domain"
)

var registrationColumnNames = []string{
	"id", "session_id", "training_title", "first_name", "last_name", "email",
	"company", "phone", "job_title", "experience_level", "expectations",
	"status", "payment_status", "stripe_payment_intent_id", "stripe_customer_id",
	"payment_amount", "payment_currency", "payment_receipt_url", "created_at", "updated_at",
}

func paidRegistration() *domain.Registration {
	intentID := "pi_123"
	amount := int64(7500)
	currency := "usd"
	return &domain.Registration{
		SessionID:             "sess-1",
		TrainingTitle:         "AI Fundamentals",
		FirstName:             "Jane",
		LastName:              "Doe",
		Email:                 "jane@example.com",
		Status:                domain.RegistrationStatusConfirmed,
		PaymentStatus:         domain.PaymentStatePaid,
		StripePaymentIntentID: &intentID,
		PaymentAmount:         &amount,
		PaymentCurrency:       &currency,
	}
}

func TestCreateConfirmed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO training_registrations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("reg-1"))
	mock.ExpectCommit()

	reg := paidRegistration()
	require.NoError(t, repo.CreateConfirmed(context.Background(), reg))
	assert.Equal(t, "reg-1", reg.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedSessionFull(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err = repo.CreateConfirmed(context.Background(), paidRegistration())
	assert.ErrorIs(t, err, domain.ErrSessionFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedSessionGone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err = repo.CreateConfirmed(context.Background(), paidRegistration())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedDuplicateIntent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO training_registrations").
		WillReturnError(&pq.Error{Code: uniqueViolation})
	mock.ExpectRollback()

	err = repo.CreateConfirmed(context.Background(), paidRegistration())
	assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPaymentIntentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(registrationColumnNames).AddRow(
		"reg-1", "sess-1", "AI Fundamentals", "Jane", "Doe", "jane@example.com",
		nil, nil, nil, nil, nil,
		"confirmed", "paid", "pi_123", "cus_9", int64(7500), "usd", nil, now, now,
	)
	mock.ExpectQuery("FROM training_registrations WHERE stripe_payment_intent_id").
		WithArgs("pi_123").
		WillReturnRows(rows)

	reg, err := repo.GetByPaymentIntentID(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "reg-1", reg.ID)
	assert.Nil(t, reg.Company)
	require.NotNil(t, reg.PaymentAmount)
	assert.Equal(t, int64(7500), *reg.PaymentAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPaymentIntentIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepository(db)

	mock.ExpectQuery("FROM training_registrations WHERE stripe_payment_intent_id").
		WithArgs("pi_missing").
		WillReturnRows(sqlmock.NewRows(registrationColumnNames))

	_, err = repo.GetByPaymentIntentID(context.Background(), "pi_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRegistrationsByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(registrationColumnNames).
		AddRow("reg-2", "sess-1", "AI Fundamentals", "Jane", "Doe", "jane@example.com",
			nil, nil, nil, nil, nil, "confirmed", "paid", "pi_2", nil, int64(15000), "usd", nil, now, now).
		AddRow("reg-1", "sess-1", "AI Fundamentals", "Jane", "Doe", "jane@example.com",
			nil, nil, nil, nil, nil, "confirmed", "paid", "pi_1", nil, int64(7500), "usd", nil, now.Add(-time.Hour), now)
	mock.ExpectQuery("FROM training_registrations WHERE email").
		WithArgs("jane@example.com").
		WillReturnRows(rows)

	regs, err := repo.ListByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "reg-2", regs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
