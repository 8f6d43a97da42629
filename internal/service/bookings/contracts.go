package bookings

import (
	"context"

	"github.com/mediana/WHX-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, update domain.BookingUpdate) error
	Delete(ctx context.Context, id string) error
	FindByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
}

// Metrics счетчики бизнес-событий бронирования
type Metrics interface {
	IncBookingsDeleted()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
