package booking

import (
	"time"

	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// bookingRecord формат записи в key-value хранилище.
// Имена полей совпадают с форматом, который исторически писал web-клиент,
// поэтому старое состояние читается без миграции.
type bookingRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	CompanyName     string  `json:"companyName"`
	Country         string  `json:"country"`
	ProductInterest string  `json:"productInterest"`
	InquiryType     string  `json:"inquiryType"`
	Message         *string `json:"message,omitempty"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	CreatedAt       string  `json:"createdAt"` // RFC3339
}

func toRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		CompanyName:     b.CompanyName,
		Country:         b.Country,
		ProductInterest: b.ProductInterest,
		InquiryType:     b.InquiryType,
		Message:         b.Message,
		Date:            b.Date,
		Time:            b.Time.String(),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func fromRecord(r bookingRecord) (*domain.Booking, error) {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		CompanyName:     r.CompanyName,
		Country:         r.Country,
		ProductInterest: r.ProductInterest,
		InquiryType:     r.InquiryType,
		Message:         r.Message,
		Date:            r.Date,
		Time:            startTime,
		CreatedAt:       createdAt,
	}, nil
}

// CreateFields поля нового бронирования. ID и CreatedAt присваивает репозиторий.
type CreateFields struct {
	Name            string
	Email           string
	CompanyName     string
	Country         string
	ProductInterest string
	InquiryType     string
	Message         *string
	Date            string
	Time            types.TimeString
}
