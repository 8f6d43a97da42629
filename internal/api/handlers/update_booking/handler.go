package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
	"github.com/mediana/WHX-BookingService/internal/service/bookings"
	"github.com/mediana/WHX-BookingService/internal/service/bookings/models"
)

const (
	msgMissingID          = "booking id is required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "no valid fields to update"
	msgBookingNotFound    = "booking not found"
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

// Handle PATCH /api/v1/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("PATCH /admin/bookings/{id} - Missing booking id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id} - Booking not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id} - Invalid input: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/bookings/{id} - Failed to update booking: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("PATCH /admin/bookings/{id} - Failed to read updated booking: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id} - Booking updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
