package list_bookings

import (
	"errors"
	"net/http"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
	"github.com/mediana/WHX-BookingService/internal/service/bookings"
	"github.com/mediana/WHX-BookingService/internal/service/bookings/models"
	"github.com/mediana/WHX-BookingService/pkg/ptr"
)

const msgInvalidInput = "invalid query parameters"

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

// Handle GET /api/v1/admin/bookings?date=YYYY-MM-DD&search=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = ptr.Ptr(date)
	}
	if search := r.URL.Query().Get("search"); search != "" {
		req.Search = ptr.Ptr(search)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
