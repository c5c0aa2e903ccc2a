package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"traininghub/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

// NewContactRepository returns a ContactRepository backed by Postgres.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (first_name, last_name, email, company, phone, training_interests, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		sub.FirstName, sub.LastName, sub.Email, sub.Company, sub.Phone,
		pq.Array(sub.TrainingInterests), sub.Message, sub.Status,
		sub.CreatedAt, sub.UpdatedAt,
	).Scan(&sub.ID)
}

func (r *contactRepository) ListByEmail(ctx context.Context, email string) ([]*domain.ContactSubmission, error) {
	query := `
		SELECT id, first_name, last_name, email, company, phone, training_interests, message, status, created_at, updated_at
		FROM contact_submissions
		WHERE email = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]*domain.ContactSubmission, 0)
	for rows.Next() {
		sub := &domain.ContactSubmission{}
		var company, phone sql.NullString
		if err := rows.Scan(
			&sub.ID, &sub.FirstName, &sub.LastName, &sub.Email, &company, &phone,
			pq.Array(&sub.TrainingInterests), &sub.Message, &sub.Status,
			&sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sub.Company = nullString(company)
		sub.Phone = nullString(phone)
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
