package create_booking

import (
	"context"
	"fmt"

	"github.com/mediana/WHX-BookingService/internal/domain"
	bookingRepo "github.com/mediana/WHX-BookingService/internal/infra/storage/booking"
	"github.com/mediana/WHX-BookingService/internal/integrations/mailservice"
)

// UseCase use case создания бронирования (admission flow).
// Повторно проверяет доступность слота непосредственно перед записью:
// между отрисовкой сетки слотов и отправкой формы слот мог занять другой посетитель.
// Проверка и запись выполняются под сериализующей блокировкой, чтобы два
// конкурентных запроса не прошли проверку одновременно.
type UseCase struct {
	bookingRepo BookingRepository
	event       *domain.EventConfig
	lock        AdmissionLock
	notifier    ConfirmationNotifier
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier и metrics могут быть nil - тогда подтверждения не отправляются,
// а счетчики не собираются.
func NewUseCase(
	bookingRepo BookingRepository,
	event *domain.EventConfig,
	lock AdmissionLock,
	notifier ConfirmationNotifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		event:       event,
		lock:        lock,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, company=%s, date=%s, time=%s",
		req.Email, req.CompanyName, req.Date, req.Time)

	// 1. Валидация обязательных полей и значений из фиксированных списков
	if err := validateRequest(req, uc.event); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна быть одной из дат выставки
	day := uc.event.DayByDate(req.Date)
	if day == nil {
		uc.logger.Warn("CreateBooking: date %s is not an exhibition date", req.Date)
		return nil, ErrDateNotInEvent
	}

	// 3. Время должно попадать в сетку слотов рабочего окна
	if err := validateTimeSlot(day, req.Time); err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 4. Проверка доступности и запись - одна сериализуемая секция
	err := uc.lock.DoSerializable(ctx, func(ctx context.Context) error {
		available, err := uc.bookingRepo.IsAvailable(ctx, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed for %s %s: %v", req.Date, req.Time, err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if !available {
			uc.logger.Warn("CreateBooking: slot %s %s is already taken", req.Date, req.Time)
			if uc.metrics != nil {
				uc.metrics.IncSlotConflicts()
			}
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(ctx, bookingRepo.CreateFields{
			Name:            req.Name,
			Email:           req.Email,
			CompanyName:     req.CompanyName,
			Country:         req.Country,
			ProductInterest: req.ProductInterest,
			InquiryType:     req.InquiryType,
			Message:         req.Message,
			Date:            req.Date,
			Time:            req.Time,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for %s %s",
		result.ID, result.Date, result.Time)

	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated()
	}

	// 5. Подтверждение по почте - fire-and-forget, на результат бронирования не влияет
	if uc.notifier != nil {
		uc.notifier.Enqueue(mailservice.Confirmation{
			Name:      result.Name,
			Email:     result.Email,
			Date:      result.Date,
			Time:      result.Time.String(),
			BookingID: result.ID,
		})
	}

	return &Response{
		ID:              result.ID,
		Name:            result.Name,
		Email:           result.Email,
		CompanyName:     result.CompanyName,
		Country:         result.Country,
		ProductInterest: result.ProductInterest,
		InquiryType:     result.InquiryType,
		Message:         result.Message,
		Date:            result.Date,
		Time:            result.Time,
		CreatedAt:       result.CreatedAt,
	}, nil
}
