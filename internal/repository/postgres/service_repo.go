package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"traininghub/internal/domain"
)

type trainingServiceRepository struct {
	DB *sql.DB
}

// NewTrainingServiceRepository returns a TrainingServiceRepository backed by Postgres.
func NewTrainingServiceRepository(db *sql.DB) domain.TrainingServiceRepository {
	return &trainingServiceRepository{DB: db}
}

const serviceColumns = `id, title, description, duration, level, format, base_price, early_bird_price, early_bird_days, features, session_outline, available, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*domain.TrainingService, error) {
	svc := &domain.TrainingService{}
	var earlyBird sql.NullInt64
	err := row.Scan(
		&svc.ID, &svc.Title, &svc.Description, &svc.Duration, &svc.Level, &svc.Format,
		&svc.BasePrice, &earlyBird, &svc.EarlyBirdDays,
		pq.Array(&svc.Features), pq.Array(&svc.SessionOutline),
		&svc.Available, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if earlyBird.Valid {
		svc.EarlyBirdPrice = &earlyBird.Int64
	}
	return svc, nil
}

func (r *trainingServiceRepository) Create(ctx context.Context, svc *domain.TrainingService) error {
	query := `
		INSERT INTO services (title, description, duration, level, format, base_price, early_bird_price, early_bird_days, features, session_outline, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		svc.Title, svc.Description, svc.Duration, svc.Level, svc.Format,
		svc.BasePrice, svc.EarlyBirdPrice, svc.EarlyBirdDays,
		pq.Array(svc.Features), pq.Array(svc.SessionOutline),
		svc.Available, svc.CreatedAt, svc.UpdatedAt,
	).Scan(&svc.ID)
}

func (r *trainingServiceRepository) Update(ctx context.Context, svc *domain.TrainingService) error {
	query := `
		UPDATE services
		SET title = $1, description = $2, duration = $3, level = $4, format = $5,
		    base_price = $6, early_bird_price = $7, early_bird_days = $8,
		    features = $9, session_outline = $10, available = $11, updated_at = NOW()
		WHERE id = $12
	`
	result, err := r.DB.ExecContext(ctx, query,
		svc.Title, svc.Description, svc.Duration, svc.Level, svc.Format,
		svc.BasePrice, svc.EarlyBirdPrice, svc.EarlyBirdDays,
		pq.Array(svc.Features), pq.Array(svc.SessionOutline),
		svc.Available, svc.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *trainingServiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *trainingServiceRepository) GetByID(ctx context.Context, id string) (*domain.TrainingService, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	svc, err := scanService(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (r *trainingServiceRepository) ListAvailable(ctx context.Context) ([]*domain.TrainingService, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE available = true ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *trainingServiceRepository) List(ctx context.Context) ([]*domain.TrainingService, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *trainingServiceRepository) list(ctx context.Context, query string) ([]*domain.TrainingService, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]*domain.TrainingService, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}
