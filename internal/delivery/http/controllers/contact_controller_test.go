package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub/internal/domain"
)

// fakeContactService scripts ContactService responses.
type fakeContactService struct {
	got *domain.ContactSubmission
	err error
}

func (f *fakeContactService) Submit(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub.ID = "contact-1"
	f.got = sub
	return sub, nil
}

func TestContactSubmitEndpoint(t *testing.T) {
	svc := &fakeContactService{}
	c := NewContactController(testLogger(), svc)

	body := `{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","message":"Do you offer on-site sessions?","training_interests":["AI Fundamentals"]}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rr := httptest.NewRecorder()
	c.Submit(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, []string{"AI Fundamentals"}, svc.got.TrainingInterests)
}

func TestContactSubmitValidation(t *testing.T) {
	c := NewContactController(testLogger(), &fakeContactService{})

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"first_name":"Jane"}`))
	rr := httptest.NewRecorder()
	c.Submit(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
