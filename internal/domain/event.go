package domain

import "github.com/mediana/WHX-BookingService/pkg/types"

// EventDay represents one exhibition date with its bookable operating window
type EventDay struct {
	Date  string           // Дата (YYYY-MM-DD)
	Start types.TimeString // Начало рабочего окна
	End   types.TimeString // Конец рабочего окна (сам End слотом не является)
}

// InquiryType represents a selectable inquiry category with its description
type InquiryType struct {
	Type        string
	Description string
}

// EventConfig статическая конфигурация выставки.
// Задается при старте сервиса и read-only для всей бизнес-логики.
type EventConfig struct {
	Name             string        // Название выставки
	Days             []EventDay    // Даты выставки в хронологическом порядке
	InquiryTypes     []InquiryType // Типы запросов
	ProductInterests []string      // Интересующие продукты
	Countries        []string      // Список стран для формы
}

// DayByDate возвращает день выставки для указанной даты, nil если дата не входит в выставку
func (e *EventConfig) DayByDate(date string) *EventDay {
	for i := range e.Days {
		if e.Days[i].Date == date {
			return &e.Days[i]
		}
	}
	return nil
}

// HasInquiryType возвращает true, если тип запроса входит в фиксированный список
func (e *EventConfig) HasInquiryType(inquiryType string) bool {
	for _, t := range e.InquiryTypes {
		if t.Type == inquiryType {
			return true
		}
	}
	return false
}

// HasProductInterest возвращает true, если продукт входит в фиксированный список
func (e *EventConfig) HasProductInterest(product string) bool {
	for _, p := range e.ProductInterests {
		if p == product {
			return true
		}
	}
	return false
}

// HasCountry возвращает true, если страна входит в фиксированный список
func (e *EventConfig) HasCountry(country string) bool {
	for _, c := range e.Countries {
		if c == country {
			return true
		}
	}
	return false
}

// DefaultEventConfig возвращает конфигурацию WHX Dubai 2026 по умолчанию.
// Используется, когда секция [event] в config.toml не заполнена.
func DefaultEventConfig() *EventConfig {
	return &EventConfig{
		Name: "WHX Dubai 2026",
		Days: []EventDay{
			{Date: "2026-02-09", Start: "10:00", End: "18:00"},
			{Date: "2026-02-10", Start: "10:00", End: "18:00"},
			{Date: "2026-02-11", Start: "10:00", End: "18:00"},
			{Date: "2026-02-12", Start: "10:00", End: "17:00"},
		},
		InquiryTypes: []InquiryType{
			{Type: "Product Demonstration", Description: "See our devices in action at the booth"},
			{Type: "Distribution Partnership", Description: "Discuss becoming a regional distributor"},
			{Type: "Purchasing Inquiry", Description: "Pricing, quotations and order conditions"},
			{Type: "Technical Consultation", Description: "Specifications, integration and service questions"},
		},
		ProductInterests: []string{
			"Patient Monitors",
			"Defibrillators / AED",
			"Diagnostic ECG",
			"Anesthesia Machines",
		},
		Countries: []string{
			"United Arab Emirates", "Saudi Arabia", "Qatar", "Kuwait", "Oman", "Bahrain",
			"Egypt", "Jordan", "Lebanon", "Iraq", "Turkey", "India", "Pakistan",
			"South Korea", "Japan", "China", "Singapore", "Indonesia", "Malaysia",
			"Germany", "France", "United Kingdom", "Italy", "Spain", "Netherlands",
			"United States", "Canada", "Brazil", "Mexico", "South Africa", "Nigeria",
			"Kenya", "Australia", "Other",
		},
	}
}
