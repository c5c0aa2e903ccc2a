package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"traininghub/internal/delivery/http/helpers"
	"traininghub/internal/domain"
)

// writeServiceError maps domain errors to API status codes and error codes.
// Unrecognized errors become 500 internal_error; their details stay in the
// log, not the response.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	// The orphaned check runs first: OrphanedPaymentError unwraps to the
	// failure that stranded the payment (ErrNotFound, ErrSessionFull, ...),
	// and those sentinels must not shadow the orphaned response.
	var orphaned *domain.OrphanedPaymentError
	switch {
	case errors.As(err, &orphaned):
		logger.ErrorContext(r.Context(), "orphaned payment", "path", r.URL.Path,
			"payment_intent_id", orphaned.PaymentIntentID, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeRegistrationIncomplete,
			"payment succeeded but the registration could not be completed; support has been notified")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrSessionFull):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeSessionFull, "session is full")
	case errors.Is(err, domain.ErrPaymentNotVerified):
		helpers.WriteJSONError(w, http.StatusPaymentRequired, helpers.ErrCodePaymentNotVerified, "payment has not completed")
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
