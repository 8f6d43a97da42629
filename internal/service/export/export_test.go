package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/pkg/ptr"
)

func TestRender_Empty(t *testing.T) {
	data, err := Render(nil)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"ID", "Name", "Email", "Company", "Country", "Product", "Inquiry Type", "Date", "Time", "Message",
	}, records[0])
}

func TestRender_Rows(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:              "b1",
			Name:            "Ahmed Al Mansoori",
			Email:           "ahmed@gulfmed.ae",
			CompanyName:     "GulfMed Trading",
			Country:         "United Arab Emirates",
			ProductInterest: "Patient Monitors",
			InquiryType:     "Purchasing Inquiry",
			Message:         ptr.Ptr("Interested in bulk pricing"),
			Date:            "2026-02-09",
			Time:            "10:00",
			CreatedAt:       time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:              "b2",
			Name:            "Fatima Al Qasimi",
			Email:           "fatima@alshifa.sa",
			CompanyName:     "Al Shifa Medical",
			Country:         "Saudi Arabia",
			ProductInterest: "Diagnostic ECG",
			InquiryType:     "Technical Consultation",
			Date:            "2026-02-10",
			Time:            "14:30",
			CreatedAt:       time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := Render(bookings)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"b1", "Ahmed Al Mansoori", "ahmed@gulfmed.ae", "GulfMed Trading",
		"United Arab Emirates", "Patient Monitors", "Purchasing Inquiry",
		"2026-02-09", "10:00", "Interested in bulk pricing",
	}, records[1])

	// Отсутствующее сообщение выгружается пустой ячейкой
	assert.Equal(t, "", records[2][9])
}

func TestRender_QuotesSpecialCharacters(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:          "b1",
			Name:        `Dr. "Max" Mustermann`,
			Email:       "max@klinik.de",
			CompanyName: "Klinik GmbH, Berlin",
			Country:     "Germany",
			Date:        "2026-02-09",
			Time:        "10:00",
		},
	}

	data, err := Render(bookings)
	require.NoError(t, err)

	// Кавычки и запятые переживают round-trip через CSV-парсер
	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, `Dr. "Max" Mustermann`, records[1][1])
	assert.Equal(t, "Klinik GmbH, Berlin", records[1][3])
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return records
}
