package get_available_slots

import (
	getAvailableSlots "github.com/mediana/WHX-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// SlotsResponse HTTP модель ответа со слотами на дату
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &SlotsResponse{
		Date:  resp.Date,
		Slots: slots,
	}
}
