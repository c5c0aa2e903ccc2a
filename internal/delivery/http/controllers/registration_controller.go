package controllers

import (
	"log/slog"
	"net/http"

	"traininghub/internal/delivery/http/helpers"
	"traininghub/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{Logger: logger, Service: svc}
}

// CreateIntentRequest is the request body for POST /registrations/payment-intent.
// No amount field: the server recomputes the price from stored data.
type CreateIntentRequest struct {
	SessionRef string `json:"session_ref" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
}

// CreateIntentSuccessResponse is the success envelope for POST /registrations/payment-intent (200).
type CreateIntentSuccessResponse struct {
	Data  *domain.PaymentIntentResponse `json:"data"`
	Error *helpers.APIError             `json:"error"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent for a session registration
// @Description Resolves the session, verifies it is open and has seats, recomputes the price server-side, and returns the client secret for card confirmation.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body CreateIntentRequest true "Registration intent"
// @Success 200 {object} controllers.CreateIntentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: session_full"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/payment-intent [post]
func (c *RegistrationController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.Service.CreatePaymentIntent(r.Context(), domain.PaymentIntentRequest{
		SessionRef: req.SessionRef,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// ConfirmRequest is the request body for POST /registrations/confirm.
type ConfirmRequest struct {
	PaymentIntentID string  `json:"payment_intent_id" validate:"required"`
	SessionRef      string  `json:"session_ref" validate:"required"`
	TrainingTitle   string  `json:"training_title"`
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Company         *string `json:"company"`
	Phone           *string `json:"phone"`
	JobTitle        *string `json:"job_title"`
	ExperienceLevel *string `json:"experience_level"`
	Expectations    *string `json:"expectations"`
}

// ConfirmSuccessResponse is the success envelope for POST /registrations/confirm (201).
type ConfirmSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Confirm godoc
// @Summary Finalize a paid registration
// @Description Verifies the payment with the provider, claims a seat, and persists the registration. Idempotent per payment intent: repeating the call returns the existing registration.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body ConfirmRequest true "Registration details with the payment intent reference"
// @Success 201 {object} controllers.ConfirmSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_not_verified"
// @Failure 500 {object} helpers.APIResponse "error.code: registration_incomplete or internal_error"
// @Router /registrations/confirm [post]
func (c *RegistrationController) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Finalize(r.Context(), req.PaymentIntentID, domain.RegistrationDetails{
		SessionRef:      req.SessionRef,
		TrainingTitle:   req.TrainingTitle,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Company:         req.Company,
		Phone:           req.Phone,
		JobTitle:        req.JobTitle,
		ExperienceLevel: req.ExperienceLevel,
		Expectations:    req.Expectations,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// StatusRequest is the request body for POST /registration-status. A POST so
// the email stays out of URLs and access logs.
type StatusRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// StatusSuccessResponse is the success envelope for POST /registration-status (200).
type StatusSuccessResponse struct {
	Data  *domain.StatusReport `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Status godoc
// @Summary Look up registrations and inquiries by email
// @Description Returns all registrations and contact submissions for the given email, newest first. Both lists may be empty.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body StatusRequest true "Lookup email"
// @Success 200 {object} controllers.StatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registration-status [post]
func (c *RegistrationController) Status(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	report, err := c.Service.LookupStatus(r.Context(), req.Email)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
