package models

import (
	"time"

	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// Request модели

// ListBookingsRequest запрос административного списка бронирований
type ListBookingsRequest struct {
	Date   *string `json:"date,omitempty"`   // Фильтр по дате выставки
	Search *string `json:"search,omitempty"` // Поиск по имени, email или компании
}

// UpdateBookingRequest частичное обновление бронирования.
// Отсутствующие поля не изменяются.
type UpdateBookingRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	CompanyName     *string `json:"companyName,omitempty"`
	Country         *string `json:"country,omitempty"`
	ProductInterest *string `json:"productInterest,omitempty"`
	InquiryType     *string `json:"inquiryType,omitempty"`
	Message         *string `json:"message,omitempty"`
	Date            *string `json:"date,omitempty"`
	Time            *string `json:"time,omitempty"`
}

// ToDomainUpdate конвертирует запрос в domain.BookingUpdate
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	update := domain.BookingUpdate{
		Name:            r.Name,
		Email:           r.Email,
		CompanyName:     r.CompanyName,
		Country:         r.Country,
		ProductInterest: r.ProductInterest,
		InquiryType:     r.InquiryType,
		Message:         r.Message,
		Date:            r.Date,
	}

	if r.Time != nil {
		parsed, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return domain.BookingUpdate{}, err
		}
		update.Time = &parsed
	}

	return update, nil
}

// ToDomainFilter конвертирует запрос списка в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		Date:   r.Date,
		Search: r.Search,
	}
}

// Response модели

// BookingResponse представление бронирования для административного API
type BookingResponse struct {
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
	CreatedAt       string  `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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

// FromDomainBookingList конвертирует список domain.Booking в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
