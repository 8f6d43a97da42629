package update_booking

import (
	"context"

	"github.com/mediana/WHX-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	Update(ctx context.Context, id string, req *models.UpdateBookingRequest) error
	GetByID(ctx context.Context, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
