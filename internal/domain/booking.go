package domain

import (
	"strings"
	"time"

	"github.com/mediana/WHX-BookingService/pkg/types"
)

// Booking represents a confirmed meeting reservation at the exhibition booth
type Booking struct {
	ID              string           // Уникальный идентификатор (uuid), присваивается при создании
	Name            string           // Имя посетителя
	Email           string           // Email посетителя
	CompanyName     string           // Компания посетителя
	Country         string           // Страна
	ProductInterest string           // Интересующий продукт (из фиксированного списка)
	InquiryType     string           // Тип запроса (из фиксированного списка)
	Message         *string          // Дополнительное сообщение (опционально)
	Date            string           // Дата встречи (YYYY-MM-DD, одна из дат выставки)
	Time            types.TimeString // Время начала слота (HH:MM, сетка 30 минут)
	CreatedAt       time.Time        // Время создания, неизменяемое
}

// OccupiesSlot returns true if the booking holds the given (date, time) slot
func (b *Booking) OccupiesSlot(date string, slot types.TimeString) bool {
	return b.Date == date && b.Time == slot
}

// MatchesEmail returns true if the booking's email equals the given one (case-insensitive)
func (b *Booking) MatchesEmail(email string) bool {
	return strings.EqualFold(b.Email, email)
}

// BookingUpdate частичное обновление бронирования.
// nil-поля не изменяются. ID и CreatedAt неизменяемы и здесь отсутствуют.
type BookingUpdate struct {
	Name            *string
	Email           *string
	CompanyName     *string
	Country         *string
	ProductInterest *string
	InquiryType     *string
	Message         *string
	Date            *string
	Time            *types.TimeString
}

// IsEmpty возвращает true, если обновление не содержит ни одного поля
func (u *BookingUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.CompanyName == nil &&
		u.Country == nil && u.ProductInterest == nil && u.InquiryType == nil &&
		u.Message == nil && u.Date == nil && u.Time == nil
}

// ApplyTo переносит заполненные поля обновления в бронирование
func (u *BookingUpdate) ApplyTo(b *Booking) {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Email != nil {
		b.Email = *u.Email
	}
	if u.CompanyName != nil {
		b.CompanyName = *u.CompanyName
	}
	if u.Country != nil {
		b.Country = *u.Country
	}
	if u.ProductInterest != nil {
		b.ProductInterest = *u.ProductInterest
	}
	if u.InquiryType != nil {
		b.InquiryType = *u.InquiryType
	}
	if u.Message != nil {
		b.Message = u.Message
	}
	if u.Date != nil {
		b.Date = *u.Date
	}
	if u.Time != nil {
		b.Time = *u.Time
	}
}

// BookingsFilter фильтр для административного списка бронирований
type BookingsFilter struct {
	Date   *string // Фильтр по дате выставки (опционально)
	Search *string // Поиск по имени, email или компании (опционально, без учета регистра)
}

// Matches returns true if the booking passes the filter
func (f *BookingsFilter) Matches(b *Booking) bool {
	if f.Date != nil && b.Date != *f.Date {
		return false
	}
	if f.Search != nil {
		q := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.Email), q) &&
			!strings.Contains(strings.ToLower(b.CompanyName), q) {
			return false
		}
	}
	return true
}
