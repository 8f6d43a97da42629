package get_available_slots

import (
	"context"
	"fmt"

	"github.com/mediana/WHX-BookingService/internal/domain"
)

// UseCase use case получения сетки слотов на дату выставки.
// Доступность каждого слота вычисляется заново при каждом вызове:
// она производна от коллекции бронирований и не кэшируется.
type UseCase struct {
	bookingRepo BookingRepository
	event       *domain.EventConfig
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, event *domain.EventConfig, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		event:       event,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим день выставки с его рабочим окном
	day := uc.event.DayByDate(req.Date)
	if day == nil {
		uc.logger.Warn("GetAvailableSlots: date %s is not an exhibition date", req.Date)
		return nil, ErrDateNotInEvent
	}

	// 3. Генерируем все слоты рабочего окна
	timeSlots, err := generateTimeSlots(*day, domain.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Аннотируем каждый слот доступностью из репозитория
	slots := make([]domain.Slot, len(timeSlots))
	for i, startTime := range timeSlots {
		available, err := uc.bookingRepo.IsAvailable(ctx, req.Date, startTime)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: availability check failed for %s %s: %v", req.Date, startTime, err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		slots[i] = domain.Slot{
			StartTime:       startTime,
			DurationMinutes: domain.SlotDurationMinutes,
			Available:       available,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s", len(slots), req.Date)

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
