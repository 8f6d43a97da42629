package get_available_slots

import (
	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// generateTimeSlots генерирует все слоты рабочего окна с фиксированным шагом.
// Слоты идут от начала окна, пока время начала СТРОГО раньше конца окна:
// сам конец окна слотом не является. Окно с start >= end дает пустой список.
func generateTimeSlots(day domain.EventDay, slotDuration int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := day.Start

	for current.IsBefore(day.End) {
		slots = append(slots, current)

		next, err := current.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		// AddMinutes не переходит через полночь, защищаемся от зацикливания
		if !current.IsBefore(next) {
			break
		}
		current = next
	}

	return slots, nil
}
