package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"traininghub/internal/delivery/http/helpers"
	"traininghub/internal/domain"
)

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{Logger: logger, Service: svc}
}

// LoginRequest is the request body for POST /admin/login.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued admin session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginSuccessResponse is the success envelope for POST /admin/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Login godoc
// @Summary Exchange the admin password for a session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} controllers.LoginSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, expiresAt, err := c.Service.Login(r.Context(), req.Password)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// ServiceRequest is the request body for admin service create/update.
type ServiceRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	Duration       string   `json:"duration"`
	Level          string   `json:"level"`
	Format         string   `json:"format"`
	BasePrice      int64    `json:"base_price" validate:"required,gt=0"`
	EarlyBirdPrice *int64   `json:"early_bird_price"`
	EarlyBirdDays  int      `json:"early_bird_days"`
	Features       []string `json:"features"`
	SessionOutline []string `json:"session_outline"`
	Available      bool     `json:"available"`
}

func (req *ServiceRequest) toDomain(id string) *domain.TrainingService {
	return &domain.TrainingService{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		Duration:       req.Duration,
		Level:          req.Level,
		Format:         req.Format,
		BasePrice:      req.BasePrice,
		EarlyBirdPrice: req.EarlyBirdPrice,
		EarlyBirdDays:  req.EarlyBirdDays,
		Features:       req.Features,
		SessionOutline: req.SessionOutline,
		Available:      req.Available,
	}
}

// ListServices godoc
// @Summary List all training services, including unavailable ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListServicesSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/services [get]
func (c *AdminController) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := c.Service.ListServices(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, services)
}

// CreateService godoc
// @Summary Create a training service
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ServiceRequest true "Service fields (prices in integer cents)"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/services [post]
func (c *AdminController) CreateService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	svc := req.toDomain("")
	if err := c.Service.CreateService(r.Context(), svc); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, svc)
}

// UpdateService godoc
// @Summary Update a training service
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceID path string true "Service ID"
// @Param request body ServiceRequest true "Service fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/services/{serviceID} [put]
func (c *AdminController) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	svc := req.toDomain(r.PathValue("serviceID"))
	if err := c.Service.UpdateService(r.Context(), svc); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, svc)
}

// DeleteService godoc
// @Summary Delete a training service and its sessions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param serviceID path string true "Service ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/services/{serviceID} [delete]
func (c *AdminController) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteService(r.Context(), r.PathValue("serviceID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": r.PathValue("serviceID")})
}

// SessionRequest is the request body for admin session create/update.
type SessionRequest struct {
	ServiceID           string     `json:"service_id" validate:"required"`
	SessionCode         string     `json:"session_code" validate:"required"`
	Date                time.Time  `json:"date" validate:"required"`
	TimeOfDay           string     `json:"time"`
	MaxCapacity         int        `json:"max_capacity" validate:"required,gt=0"`
	Status              string     `json:"status"`
	LocationName        *string    `json:"location_name"`
	LocationAddress     *string    `json:"location_address"`
	LocationCity        *string    `json:"location_city"`
	LocationState       *string    `json:"location_state"`
	LocationZip         *string    `json:"location_zip"`
	LocationPhone       *string    `json:"location_phone"`
	LocationNotes       *string    `json:"location_notes"`
	IsVirtual           bool       `json:"is_virtual"`
	VirtualLink         *string    `json:"virtual_link"`
	LocationConfirmedBy *time.Time `json:"location_confirmed_by"`
}

func (req *SessionRequest) toDomain(id string) *domain.Session {
	return &domain.Session{
		ID:                  id,
		ServiceID:           req.ServiceID,
		SessionCode:         req.SessionCode,
		Date:                req.Date,
		TimeOfDay:           req.TimeOfDay,
		MaxCapacity:         req.MaxCapacity,
		Status:              domain.SessionStatus(req.Status),
		LocationName:        req.LocationName,
		LocationAddress:     req.LocationAddress,
		LocationCity:        req.LocationCity,
		LocationState:       req.LocationState,
		LocationZip:         req.LocationZip,
		LocationPhone:       req.LocationPhone,
		LocationNotes:       req.LocationNotes,
		IsVirtual:           req.IsVirtual,
		VirtualLink:         req.VirtualLink,
		LocationConfirmedBy: req.LocationConfirmedBy,
	}
}

// ListSessions godoc
// @Summary List all sessions, including past and cancelled ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSessionsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/sessions [get]
func (c *AdminController) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListSessions(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary Schedule a session for a training service
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SessionRequest true "Session fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/sessions [post]
func (c *AdminController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session := req.toDomain("")
	if err := c.Service.CreateSession(r.Context(), session); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// UpdateSession godoc
// @Summary Update a scheduled session
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param request body SessionRequest true "Session fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/sessions/{sessionID} [put]
func (c *AdminController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session := req.toDomain(r.PathValue("sessionID"))
	if err := c.Service.UpdateSession(r.Context(), session); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete a scheduled session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/sessions/{sessionID} [delete]
func (c *AdminController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteSession(r.Context(), r.PathValue("sessionID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": r.PathValue("sessionID")})
}

// SeedTestData godoc
// @Summary Seed the demo catalog (non-production only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/test-data [post]
func (c *AdminController) SeedTestData(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.SeedTestData(r.Context()); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, map[string]string{"status": "seeded"})
}

// ClearTestData godoc
// @Summary Remove the seeded demo catalog (non-production only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/test-data [delete]
func (c *AdminController) ClearTestData(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.ClearTestData(r.Context()); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "cleared"})
}
