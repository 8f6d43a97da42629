package create_booking

import (
	"context"

	"github.com/mediana/WHX-BookingService/internal/domain"
	bookingRepo "github.com/mediana/WHX-BookingService/internal/infra/storage/booking"
	"github.com/mediana/WHX-BookingService/internal/integrations/mailservice"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, fields bookingRepo.CreateFields) (*domain.Booking, error)
	IsAvailable(ctx context.Context, date string, slot types.TimeString) (bool, error)
}

// AdmissionLock сериализует секцию "проверка доступности + создание".
// Без нее два конкурентных запроса могут пройти проверку одновременно
// и занять один слот двумя бронированиями.
type AdmissionLock interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfirmationNotifier fire-and-forget очередь отправки подтверждений
type ConfirmationNotifier interface {
	Enqueue(confirmation mailservice.Confirmation) bool
}

// Metrics счетчики бизнес-событий бронирования
type Metrics interface {
	IncBookingsCreated()
	IncSlotConflicts()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
