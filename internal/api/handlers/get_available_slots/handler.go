package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/mediana/WHX-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "query parameter 'date' is required"
	msgInvalidInput   = "invalid date format, expected YYYY-MM-DD"
	msgDateNotInEvent = "selected date is not an exhibition date"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /slots - Missing date query parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateNotInEvent):
			h.logger.Warn("GET /slots - Date not in event: date=%s", date)
			handlers.RespondNotFound(w, msgDateNotInEvent)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Returned %d slots for date=%s", len(result.Slots), date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
