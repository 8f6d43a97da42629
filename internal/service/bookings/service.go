package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mediana/WHX-BookingService/internal/domain"
	bookingRepo "github.com/mediana/WHX-BookingService/internal/infra/storage/booking"
	"github.com/mediana/WHX-BookingService/internal/service/bookings/models"
)

// Service сервис административной работы с бронированиями.
// Читает коллекцию из репозитория; сортировку и фильтрацию выполняет сам,
// репозиторий порядок не гарантирует.
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// metrics может быть nil - тогда счетчики не собираются.
func NewService(bookingRepo BookingRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает бронирования с фильтрацией по дате и поисковой строке,
// отсортированные по дате и времени встречи
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", *req.Date)
	}
	if req.Search != nil {
		logMsg += fmt.Sprintf(", search=%q", *req.Search)
	}
	s.logger.Info(logMsg)

	all, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filter := req.ToDomainFilter()
	filtered := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if filter.Matches(b) {
			filtered = append(filtered, b)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time.IsBefore(filtered[j].Time)
	})

	s.logger.Info("List: returning %d of %d bookings", len(filtered), len(all))
	return models.FromDomainBookingList(filtered), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Update применяет частичное обновление к бронированию.
// ID и время создания неизменяемы. Возвращает ErrBookingNotFound,
// если бронирование не существует: администратору важно видеть,
// что правка ушла в пустоту.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) error {
	s.logger.Info("Update: updating booking id=%s", id)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid update for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: invalid time format", ErrInvalidInput)
	}

	if update.IsEmpty() {
		s.logger.Warn("Update: empty update for booking id=%s", id)
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// Репозиторий молчит про отсутствующий ID, проверяем явно
	if _, err := s.bookingRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Update(ctx, id, update); err != nil {
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return nil
}

// Delete удаляет бронирование, освобождая его слот.
// Возвращает ErrBookingNotFound, если бронирование не существует.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if _, err := s.bookingRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.IncBookingsDeleted()
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// FindByEmail возвращает бронирования с указанным email (без учета регистра)
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.BookingListResponse, error) {
	s.logger.Info("FindByEmail: fetching bookings for email=%s", email)

	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("FindByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: FindByEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FindByEmail: found %d bookings for email=%s", len(bookings), email)
	return models.FromDomainBookingList(bookings), nil
}
