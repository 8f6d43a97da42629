package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
	"github.com/mediana/WHX-BookingService/internal/service/bookings"
)

const (
	msgMissingID       = "booking id is required"
	msgBookingNotFound = "booking not found"
)

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

// Handle GET /api/v1/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("GET /admin/bookings/{id} - Missing booking id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /admin/bookings/{id} - Booking not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /admin/bookings/{id} - Failed to get booking: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{id} - Returned booking id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
