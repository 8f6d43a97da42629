package get_bookings_by_email

import (
	"errors"
	"net/http"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
	"github.com/mediana/WHX-BookingService/internal/service/bookings"
)

const msgMissingEmail = "query parameter 'email' is required"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/by-email?email=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /admin/bookings/by-email - Missing email query parameter")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.service.FindByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/by-email - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /admin/bookings/by-email - Failed to find bookings: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/by-email - Returned %d bookings for email=%s", result.Total, email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
