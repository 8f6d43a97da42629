package export_bookings

import (
	"context"

	"github.com/mediana/WHX-BookingService/internal/domain"
)

type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
