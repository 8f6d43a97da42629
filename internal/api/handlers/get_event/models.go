package get_event

import (
	"github.com/mediana/WHX-BookingService/internal/domain"
)

// EventDayResponse HTTP модель одной даты выставки
type EventDayResponse struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// InquiryTypeResponse HTTP модель типа запроса
type InquiryTypeResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// EventResponse HTTP модель конфигурации выставки для формы бронирования
type EventResponse struct {
	Name             string                `json:"name"`
	Days             []EventDayResponse    `json:"days"`
	SlotDuration     int                   `json:"slotDurationMinutes"`
	InquiryTypes     []InquiryTypeResponse `json:"inquiryTypes"`
	ProductInterests []string              `json:"productInterests"`
	Countries        []string              `json:"countries"`
}

// FromDomainEvent конвертирует доменную конфигурацию выставки в HTTP response
func FromDomainEvent(event *domain.EventConfig) *EventResponse {
	days := make([]EventDayResponse, len(event.Days))
	for i, day := range event.Days {
		days[i] = EventDayResponse{
			Date:  day.Date,
			Start: day.Start.String(),
			End:   day.End.String(),
		}
	}

	inquiryTypes := make([]InquiryTypeResponse, len(event.InquiryTypes))
	for i, it := range event.InquiryTypes {
		inquiryTypes[i] = InquiryTypeResponse{
			Type:        it.Type,
			Description: it.Description,
		}
	}

	return &EventResponse{
		Name:             event.Name,
		Days:             days,
		SlotDuration:     domain.SlotDurationMinutes,
		InquiryTypes:     inquiryTypes,
		ProductInterests: event.ProductInterests,
		Countries:        event.Countries,
	}
}
