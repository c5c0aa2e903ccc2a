package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub/internal/delivery/http/helpers"
	"traininghub/internal/domain"
)

// fakeAdminService scripts AdminService responses.
type fakeAdminService struct {
	token    string
	loginErr error
	err      error

	createdService *domain.TrainingService
	createdSession *domain.Session
	seeded         bool
	cleared        bool
}

func (f *fakeAdminService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if f.loginErr != nil {
		return "", time.Time{}, f.loginErr
	}
	return f.token, time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC), nil
}

func (f *fakeAdminService) CreateService(ctx context.Context, svc *domain.TrainingService) error {
	if f.err != nil {
		return f.err
	}
	svc.ID = "svc-1"
	f.createdService = svc
	return nil
}

func (f *fakeAdminService) UpdateService(ctx context.Context, svc *domain.TrainingService) error {
	return f.err
}
func (f *fakeAdminService) DeleteService(ctx context.Context, id string) error { return f.err }
func (f *fakeAdminService) ListServices(ctx context.Context) ([]*domain.TrainingService, error) {
	return []*domain.TrainingService{}, f.err
}

func (f *fakeAdminService) CreateSession(ctx context.Context, session *domain.Session) error {
	if f.err != nil {
		return f.err
	}
	session.ID = "sess-1"
	f.createdSession = session
	return nil
}

func (f *fakeAdminService) UpdateSession(ctx context.Context, session *domain.Session) error {
	return f.err
}
func (f *fakeAdminService) DeleteSession(ctx context.Context, id string) error { return f.err }
func (f *fakeAdminService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	return []*domain.Session{}, f.err
}

func (f *fakeAdminService) SeedTestData(ctx context.Context) error {
	f.seeded = true
	return f.err
}

func (f *fakeAdminService) ClearTestData(ctx context.Context) error {
	f.cleared = true
	return f.err
}

func TestAdminLoginEndpoint(t *testing.T) {
	c := NewAdminController(testLogger(), &fakeAdminService{token: "signed-token"})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"hunter2"}`))
	rr := httptest.NewRecorder()
	c.Login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.Nil(t, envelope.Error)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, "signed-token", data["token"])
	assert.NotEmpty(t, data["expires_at"])
}

func TestAdminLoginRejected(t *testing.T) {
	c := NewAdminController(testLogger(), &fakeAdminService{loginErr: domain.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"wrong"}`))
	rr := httptest.NewRecorder()
	c.Login(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
}

func TestAdminCreateServiceEndpoint(t *testing.T) {
	svc := &fakeAdminService{}
	c := NewAdminController(testLogger(), svc)

	body := `{"title":"AI Fundamentals","base_price":15000,"early_bird_price":7500,"early_bird_days":7,"available":true}`
	req := httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(body))
	rr := httptest.NewRecorder()
	c.CreateService(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.createdService)
	assert.Equal(t, int64(15000), svc.createdService.BasePrice)
	require.NotNil(t, svc.createdService.EarlyBirdPrice)
	assert.Equal(t, int64(7500), *svc.createdService.EarlyBirdPrice)
}

func TestAdminCreateServiceValidation(t *testing.T) {
	c := NewAdminController(testLogger(), &fakeAdminService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(`{"title":"","base_price":0}`))
	rr := httptest.NewRecorder()
	c.CreateService(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminCreateSessionEndpoint(t *testing.T) {
	svc := &fakeAdminService{}
	c := NewAdminController(testLogger(), svc)

	body := `{"service_id":"svc-1","session_code":"TRN300","date":"2026-04-15T09:00:00Z","max_capacity":12}`
	req := httptest.NewRequest(http.MethodPost, "/admin/sessions", strings.NewReader(body))
	rr := httptest.NewRecorder()
	c.CreateSession(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.createdSession)
	assert.Equal(t, "TRN300", svc.createdSession.SessionCode)
}

func TestAdminTestDataEndpoints(t *testing.T) {
	svc := &fakeAdminService{}
	c := NewAdminController(testLogger(), svc)

	rr := httptest.NewRecorder()
	c.SeedTestData(rr, httptest.NewRequest(http.MethodPost, "/admin/test-data", nil))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, svc.seeded)

	rr = httptest.NewRecorder()
	c.ClearTestData(rr, httptest.NewRequest(http.MethodDelete, "/admin/test-data", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, svc.cleared)
}
