package get_event

import (
	"net/http"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
	"github.com/mediana/WHX-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// Handler отдает статическую конфигурацию выставки для формы бронирования
type Handler struct {
	event  *domain.EventConfig
	logger Logger
}

func NewHandler(event *domain.EventConfig, logger Logger) *Handler {
	return &Handler{
		event:  event,
		logger: logger,
	}
}

// Handle GET /api/v1/event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /event - Returned event configuration: name=%s", h.event.Name)
	handlers.RespondJSON(w, http.StatusOK, FromDomainEvent(h.event))
}
