package controllers

import (
	"log/slog"
	"net/http"

	"traininghub/internal/delivery/http/helpers"
	"traininghub/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	FirstName         string   `json:"first_name" validate:"required"`
	LastName          string   `json:"last_name" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Company           *string  `json:"company"`
	Phone             *string  `json:"phone"`
	TrainingInterests []string `json:"training_interests"`
	Message           string   `json:"message" validate:"required"`
}

// ContactSuccessResponse is the success envelope for POST /contact (201).
type ContactSuccessResponse struct {
	Data  *domain.ContactSubmission `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// Submit godoc
// @Summary Submit a contact inquiry
// @Description Stores the inquiry and sends an acknowledgement email.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form fields"
// @Success 201 {object} controllers.ContactSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Submit(r.Context(), &domain.ContactSubmission{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Company:           req.Company,
		Phone:             req.Phone,
		TrainingInterests: req.TrainingInterests,
		Message:           req.Message,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
}
