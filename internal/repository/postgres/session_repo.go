package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"traininghub/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository returns a SessionRepository backed by Postgres.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

const sessionColumns = `s.id, s.service_id, s.session_code, s.date, s.time, s.max_capacity, s.current_registrations, s.status,
	s.location_name, s.location_address, s.location_city, s.location_state, s.location_zip, s.location_phone, s.location_notes,
	s.is_virtual, s.virtual_link, s.location_confirmed_by, s.created_at, s.updated_at, sv.title`

const sessionFrom = ` FROM sessions s JOIN services sv ON sv.id = s.service_id`

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func scanSession(row interface{ Scan(...any) error }) (*domain.Session, error) {
	sess := &domain.Session{}
	var (
		locName, locAddr, locCity, locState, locZip, locPhone, locNotes sql.NullString
		virtualLink                                                     sql.NullString
		confirmedBy                                                     sql.NullTime
	)
	err := row.Scan(
		&sess.ID, &sess.ServiceID, &sess.SessionCode, &sess.Date, &sess.TimeOfDay,
		&sess.MaxCapacity, &sess.CurrentRegistrations, &sess.Status,
		&locName, &locAddr, &locCity, &locState, &locZip, &locPhone, &locNotes,
		&sess.IsVirtual, &virtualLink, &confirmedBy,
		&sess.CreatedAt, &sess.UpdatedAt, &sess.ServiceTitle,
	)
	if err != nil {
		return nil, err
	}
	sess.LocationName = nullString(locName)
	sess.LocationAddress = nullString(locAddr)
	sess.LocationCity = nullString(locCity)
	sess.LocationState = nullString(locState)
	sess.LocationZip = nullString(locZip)
	sess.LocationPhone = nullString(locPhone)
	sess.LocationNotes = nullString(locNotes)
	sess.VirtualLink = nullString(virtualLink)
	if confirmedBy.Valid {
		sess.LocationConfirmedBy = &confirmedBy.Time
	}
	return sess, nil
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (service_id, session_code, date, time, max_capacity, current_registrations, status,
			location_name, location_address, location_city, location_state, location_zip, location_phone, location_notes,
			is_virtual, virtual_link, location_confirmed_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		session.ServiceID, session.SessionCode, session.Date, session.TimeOfDay,
		session.MaxCapacity, session.CurrentRegistrations, session.Status,
		session.LocationName, session.LocationAddress, session.LocationCity, session.LocationState,
		session.LocationZip, session.LocationPhone, session.LocationNotes,
		session.IsVirtual, session.VirtualLink, session.LocationConfirmedBy,
		session.CreatedAt, session.UpdatedAt,
	).Scan(&session.ID)
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	query := `
		UPDATE sessions
		SET session_code = $1, date = $2, time = $3, max_capacity = $4, status = $5,
			location_name = $6, location_address = $7, location_city = $8, location_state = $9,
			location_zip = $10, location_phone = $11, location_notes = $12,
			is_virtual = $13, virtual_link = $14, location_confirmed_by = $15, updated_at = NOW()
		WHERE id = $16
	`
	result, err := r.DB.ExecContext(ctx, query,
		session.SessionCode, session.Date, session.TimeOfDay, session.MaxCapacity, session.Status,
		session.LocationName, session.LocationAddress, session.LocationCity, session.LocationState,
		session.LocationZip, session.LocationPhone, session.LocationNotes,
		session.IsVirtual, session.VirtualLink, session.LocationConfirmedBy,
		session.ID,
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

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + sessionFrom + ` WHERE s.id = $1`
	sess, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (r *sessionRepository) GetBySessionCode(ctx context.Context, code string) (*domain.Session, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	query := `SELECT ` + sessionColumns + sessionFrom + ` WHERE UPPER(s.session_code) = $1`
	sess, err := scanSession(r.DB.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (r *sessionRepository) ListUpcoming(ctx context.Context, serviceID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + sessionFrom + ` WHERE s.status = 'active' AND s.date >= NOW()`
	args := []any{}
	if serviceID != "" {
		query += ` AND s.service_id = $1`
		args = append(args, serviceID)
	}
	query += ` ORDER BY s.date ASC`
	return r.list(ctx, query, args...)
}

func (r *sessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + sessionFrom + ` ORDER BY s.date DESC`
	return r.list(ctx, query)
}

func (r *sessionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
