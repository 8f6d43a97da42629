// Package export renders the booking collection as delimited text for download.
// Чистая функция от списка: состояние бронирований не изменяется.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/mediana/WHX-BookingService/internal/domain"
)

// Filename имя файла выгрузки для заголовка Content-Disposition
const Filename = "whx_bookings.csv"

// ContentType MIME-тип выгрузки
const ContentType = "text/csv; charset=utf-8"

// header колонки выгрузки, порядок фиксирован
var header = []string{
	"ID", "Name", "Email", "Company", "Country", "Product", "Inquiry Type", "Date", "Time", "Message",
}

// Render сериализует список бронирований в CSV с заголовком.
// Порядок строк повторяет порядок входного списка.
func Render(bookings []*domain.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export: write header: %w", err)
	}

	for _, b := range bookings {
		message := ""
		if b.Message != nil {
			message = *b.Message
		}

		row := []string{
			b.ID,
			b.Name,
			b.Email,
			b.CompanyName,
			b.Country,
			b.ProductInterest,
			b.InquiryType,
			b.Date,
			b.Time.String(),
			message,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export: write row id=%s: %w", b.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush: %w", err)
	}

	return buf.Bytes(), nil
}
