package controllers

import (
	"log/slog"
	"net/http"

	"traininghub/internal/delivery/http/helpers"
	"traininghub/internal/domain"
)

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{Logger: logger, Service: svc}
}

// ListServicesSuccessResponse is the success envelope for GET /services (200).
type ListServicesSuccessResponse struct {
	Data  []*domain.TrainingService `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListServices godoc
// @Summary List available training services
// @Description Returns the training offerings currently open for registration, with pricing fields in integer cents.
// @Tags catalog
// @Produce json
// @Success 200 {object} controllers.ListServicesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /services [get]
func (c *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := c.Service.ListServices(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, services)
}

// ListSessionsSuccessResponse is the success envelope for GET /sessions (200).
type ListSessionsSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSessions godoc
// @Summary List upcoming sessions
// @Description Returns active, future sessions ordered by date, annotated with the owning service title. Use service_id to filter to one offering.
// @Tags catalog
// @Produce json
// @Param service_id query string false "Filter by training service ID"
// @Success 200 {object} controllers.ListSessionsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [get]
func (c *CatalogController) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListSessions(r.Context(), r.URL.Query().Get("service_id"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// SessionPricingSuccessResponse is the success envelope for GET /sessions/{sessionRef}/pricing (200).
type SessionPricingSuccessResponse struct {
	Data  *domain.SessionQuote `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// GetSessionPricing godoc
// @Summary Quote the current price for a session
// @Description Resolves a session by ID or human-readable code and returns it with the price owed right now, including any early-bird discount.
// @Tags catalog
// @Produce json
// @Param sessionRef path string true "Session ID (UUID) or session code (e.g. TEST001)"
// @Success 200 {object} controllers.SessionPricingSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionRef}/pricing [get]
func (c *CatalogController) GetSessionPricing(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("sessionRef")
	if ref == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing session reference")
		return
	}
	quote, err := c.Service.GetSessionQuote(r.Context(), ref)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, quote)
}
