package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// validateRequest валидирует обязательные поля и ссылки на фиксированные списки
func validateRequest(req *Request, event *domain.EventConfig) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		return fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Country) == "" {
		return fmt.Errorf("%w: country is required", ErrInvalidInput)
	}
	if !event.HasCountry(req.Country) {
		return fmt.Errorf("%w: unknown country %q", ErrInvalidInput, req.Country)
	}

	if req.ProductInterest == "" {
		return fmt.Errorf("%w: productInterest is required", ErrInvalidInput)
	}
	if !event.HasProductInterest(req.ProductInterest) {
		return fmt.Errorf("%w: unknown productInterest %q", ErrInvalidInput, req.ProductInterest)
	}

	if req.InquiryType == "" {
		return fmt.Errorf("%w: inquiryType is required", ErrInvalidInput)
	}
	if !event.HasInquiryType(req.InquiryType) {
		return fmt.Errorf("%w: unknown inquiryType %q", ErrInvalidInput, req.InquiryType)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateTimeSlot проверяет, что время начала лежит в рабочем окне дня
// и выровнено по 30-минутной сетке от начала окна
func validateTimeSlot(day *domain.EventDay, slot types.TimeString) error {
	if slot.IsBefore(day.Start) || !slot.IsBefore(day.End) {
		return fmt.Errorf("%w: %s is outside the operating window %s-%s",
			ErrInvalidTimeSlot, slot, day.Start, day.End)
	}

	offset, err := slot.MinutesSince(day.Start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if offset%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to the %d-minute grid",
			ErrInvalidTimeSlot, slot, domain.SlotDurationMinutes)
	}

	return nil
}
