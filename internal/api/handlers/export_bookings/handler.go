package export_bookings

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
	"github.com/mediana/WHX-BookingService/internal/service/export"
)

type Handler struct {
	bookingRepo BookingRepository
	logger      Logger
}

func NewHandler(bookingRepo BookingRepository, logger Logger) *Handler {
	return &Handler{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Handle GET /api/v1/admin/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingRepo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Строки выгрузки в порядке расписания встреч
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].Time.IsBefore(bookings[j].Time)
	})

	data, err := export.Render(bookings)
	if err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to render export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %d bookings", len(bookings))

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
