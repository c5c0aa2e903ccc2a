package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"traininghub/internal/delivery/http/controllers"
	"traininghub/internal/delivery/http/helpers"
	"traininghub/internal/delivery/http/middleware"
	"traininghub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	catalog *controllers.CatalogController,
	registrations *controllers.RegistrationController,
	contact *controllers.ContactController,
	admin *controllers.AdminController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
	db *sql.DB,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(verifier, logger)

	// Public catalog
	mux.HandleFunc("GET /services", catalog.ListServices)
	mux.HandleFunc("GET /sessions", catalog.ListSessions)
	mux.HandleFunc("GET /sessions/{sessionRef}/pricing", catalog.GetSessionPricing)

	// Registration flow
	mux.HandleFunc("POST /registrations/payment-intent", registrations.CreatePaymentIntent)
	mux.HandleFunc("POST /registrations/confirm", registrations.Confirm)
	mux.HandleFunc("POST /registration-status", registrations.Status)

	// Contact
	mux.HandleFunc("POST /contact", contact.Submit)

	// Admin
	mux.HandleFunc("POST /admin/login", admin.Login)
	mux.HandleFunc("GET /admin/services", requireAdmin(admin.ListServices))
	mux.HandleFunc("POST /admin/services", requireAdmin(admin.CreateService))
	mux.HandleFunc("PUT /admin/services/{serviceID}", requireAdmin(admin.UpdateService))
	mux.HandleFunc("DELETE /admin/services/{serviceID}", requireAdmin(admin.DeleteService))
	mux.HandleFunc("GET /admin/sessions", requireAdmin(admin.ListSessions))
	mux.HandleFunc("POST /admin/sessions", requireAdmin(admin.CreateSession))
	mux.HandleFunc("PUT /admin/sessions/{sessionID}", requireAdmin(admin.UpdateSession))
	mux.HandleFunc("DELETE /admin/sessions/{sessionID}", requireAdmin(admin.DeleteSession))
	mux.HandleFunc("POST /admin/test-data", requireAdmin(admin.SeedTestData))
	mux.HandleFunc("DELETE /admin/test-data", requireAdmin(admin.ClearTestData))

	// Operational
	mux.HandleFunc("GET /health", healthHandler(db))
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unreachable")
				return
			}
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
