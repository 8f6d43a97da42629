package create_booking

import (
	"time"

	"github.com/mediana/WHX-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name            string           // Имя посетителя
	Email           string           // Email посетителя
	CompanyName     string           // Компания
	Country         string           // Страна (из фиксированного списка)
	ProductInterest string           // Интересующий продукт (из фиксированного списка)
	InquiryType     string           // Тип запроса (из фиксированного списка)
	Message         *string          // Дополнительное сообщение (опционально)
	Date            string           // Дата встречи (YYYY-MM-DD)
	Time            types.TimeString // Время начала слота (HH:MM)
}

// Response модель ответа с созданным бронированием.
// ID служит посетителю подтверждающим номером брони.
type Response struct {
	ID              string
	Name            string
	Email           string
	CompanyName     string
	Country         string
	ProductInterest string
	InquiryType     string
	Message         *string
	Date            string
	Time            types.TimeString
	CreatedAt       time.Time
}
