package get_available_slots

import (
	"context"

	"github.com/mediana/WHX-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// IsAvailable проверяет, свободен ли слот (date, time)
	IsAvailable(ctx context.Context, date string, slot types.TimeString) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
