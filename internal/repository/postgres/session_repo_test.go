package postgres

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub/internal/domain"
)

var sessionColumnNames = []string{
	"id", "service_id", "session_code", "date", "time", "max_capacity", "current_registrations", "status",
	"location_name", "location_address", "location_city", "location_state", "location_zip", "location_phone", "location_notes",
	"is_virtual", "virtual_link", "location_confirmed_by", "created_at", "updated_at", "title",
}

func sessionRow(id, code string, date time.Time) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, "svc-1", code, date, "9:00 AM - 5:00 PM", 12, 3, "active",
		nil, nil, nil, nil, nil, nil, nil,
		true, "https://meet.example.com/x", nil, now, now, "AI Fundamentals",
	}
}

func TestGetBySessionCodeNormalizesInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSessionRepository(db)

	date := time.Now().AddDate(0, 0, 14)
	mock.ExpectQuery(`WHERE UPPER\(s.session_code\)`).
		WithArgs("TEST001").
		WillReturnRows(sqlmock.NewRows(sessionColumnNames).AddRow(sessionRow("sess-1", "TEST001", date)...))

	sess, err := repo.GetBySessionCode(context.Background(), "  test001 ")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sess.ID)
	assert.Equal(t, "AI Fundamentals", sess.ServiceTitle)
	assert.Equal(t, 9, sess.SpotsRemaining())
	assert.Nil(t, sess.LocationName)
	require.NotNil(t, sess.VirtualLink)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySessionCodeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`WHERE UPPER\(s.session_code\)`).
		WithArgs("NOPE999").
		WillReturnRows(sqlmock.NewRows(sessionColumnNames))

	_, err = repo.GetBySessionCode(context.Background(), "NOPE999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUpcomingFiltersByService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSessionRepository(db)

	date := time.Now().AddDate(0, 0, 7)
	rows := sqlmock.NewRows(sessionColumnNames).
		AddRow(sessionRow("sess-1", "TEST001", date)...).
		AddRow(sessionRow("sess-2", "TEST002", date.AddDate(0, 0, 7))...)
	mock.ExpectQuery(`s.status = 'active' AND s.date >= NOW\(\) AND s.service_id`).
		WithArgs("svc-1").
		WillReturnRows(rows)

	sessions, err := repo.ListUpcoming(context.Background(), "svc-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "TEST001", sessions[0].SessionCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUpcomingUnfiltered(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`s.status = 'active' AND s.date >= NOW\(\) ORDER BY s.date ASC`).
		WillReturnRows(sqlmock.NewRows(sessionColumnNames))

	sessions, err := repo.ListUpcoming(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, sessions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSessionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSessionRepository(db)

	mock.ExpectExec("UPDATE sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &domain.Session{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
