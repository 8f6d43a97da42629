package get_available_slots

import "github.com/mediana/WHX-BookingService/internal/domain"

// Request модель запроса на получение слотов
type Request struct {
	Date string // Дата выставки (YYYY-MM-DD)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date  string        // Дата, на которую запрашивались слоты
	Slots []domain.Slot // Слоты в порядке возрастания времени
}
