package create_booking

import (
	"time"

	createBooking "github.com/mediana/WHX-BookingService/internal/usecase/create_booking"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	CompanyName     string  `json:"companyName"`
	Country         string  `json:"country"`
	ProductInterest string  `json:"productInterest"`
	InquiryType     string  `json:"inquiryType"`
	Message         *string `json:"message,omitempty"`
	Date            string  `json:"date"` // "2026-02-09"
	Time            string  `json:"time"` // "10:30"
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		CompanyName:     r.CompanyName,
		Country:         r.Country,
		ProductInterest: r.ProductInterest,
		InquiryType:     r.InquiryType,
		Message:         r.Message,
		Date:            r.Date,
		Time:            startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Email:           resp.Email,
		CompanyName:     resp.CompanyName,
		Country:         resp.Country,
		ProductInterest: resp.ProductInterest,
		InquiryType:     resp.InquiryType,
		Message:         resp.Message,
		Date:            resp.Date,
		Time:            resp.Time.String(),
		CreatedAt:       resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
