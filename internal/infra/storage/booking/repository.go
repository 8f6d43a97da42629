package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/internal/infra/kvstore"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// Repository репозиторий бронирований поверх key-value хранилища.
// Вся коллекция лежит под одним ключом как JSON-массив записей; рабочая копия
// держится в памяти, каждая мутация синхронно переписывает ключ целиком.
//
// Репозиторий сознательно НЕ проверяет занятость слота при Create:
// эта проверка - ответственность сценария создания бронирования,
// который выполняет ее под сериализующей блокировкой непосредственно
// перед вызовом Create.
type Repository struct {
	store kvstore.Store
	key   string

	mu       sync.RWMutex
	bookings []*domain.Booking
}

// NewRepository создает репозиторий и загружает состояние из хранилища.
// Отсутствующий ключ означает пустую коллекцию. Нечитаемое состояние
// возвращает ErrCorruptedData вместе с работоспособным пустым репозиторием:
// вызывающая сторона решает, продолжать ли работу.
func NewRepository(ctx context.Context, store kvstore.Store, key string) (*Repository, error) {
	r := &Repository{
		store:    store,
		key:      key,
		bookings: make([]*domain.Booking, 0),
	}

	data, err := store.Read(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return r, nil
	}
	if err != nil {
		return r, fmt.Errorf("%w: NewRepository - read key %s: %v", ErrReadState, key, err)
	}

	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return r, fmt.Errorf("%w: NewRepository - unmarshal key %s: %v", ErrCorruptedData, key, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		b, err := fromRecord(rec)
		if err != nil {
			return r, fmt.Errorf("%w: NewRepository - record id=%s: %v", ErrCorruptedData, rec.ID, err)
		}
		bookings = append(bookings, b)
	}

	r.bookings = bookings
	return r, nil
}

// List возвращает все бронирования в порядке создания
func (r *Repository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.copyAll(), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}

	return nil, ErrBookingNotFound
}

// Create создает новое бронирование: присваивает uuid и время создания,
// добавляет в коллекцию и синхронно сохраняет состояние.
// При ошибке записи коллекция в памяти откатывается.
func (r *Repository) Create(ctx context.Context, fields CreateFields) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking := &domain.Booking{
		ID:              uuid.NewString(),
		Name:            fields.Name,
		Email:           fields.Email,
		CompanyName:     fields.CompanyName,
		Country:         fields.Country,
		ProductInterest: fields.ProductInterest,
		InquiryType:     fields.InquiryType,
		Message:         fields.Message,
		Date:            fields.Date,
		Time:            fields.Time,
		CreatedAt:       time.Now().UTC(),
	}

	r.bookings = append(r.bookings, booking)

	if err := r.persist(ctx); err != nil {
		r.bookings = r.bookings[:len(r.bookings)-1]
		return nil, err
	}

	copied := *booking
	return &copied, nil
}

// Update применяет частичное обновление к бронированию с указанным ID.
// Если бронирование не найдено - молча no-op. ID и CreatedAt не меняются.
func (r *Repository) Update(ctx context.Context, id string, update domain.BookingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID != id {
			continue
		}

		updated := *b
		update.ApplyTo(&updated)

		prev := r.bookings[i]
		r.bookings[i] = &updated

		if err := r.persist(ctx); err != nil {
			r.bookings[i] = prev
			return err
		}
		return nil
	}

	return nil
}

// Delete удаляет бронирование с указанным ID, no-op если его нет
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID != id {
			continue
		}

		prev := r.bookings
		filtered := make([]*domain.Booking, 0, len(r.bookings)-1)
		filtered = append(filtered, r.bookings[:i]...)
		filtered = append(filtered, r.bookings[i+1:]...)
		r.bookings = filtered

		if err := r.persist(ctx); err != nil {
			r.bookings = prev
			return err
		}
		return nil
	}

	return nil
}

// IsAvailable возвращает true, если ни одно бронирование не занимает слот (date, time)
func (r *Repository) IsAvailable(_ context.Context, date string, slot types.TimeString) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.OccupiesSlot(date, slot) {
			return false, nil
		}
	}

	return true, nil
}

// FindByEmail возвращает бронирования с указанным email (без учета регистра)
func (r *Repository) FindByEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.MatchesEmail(email) {
			copied := *b
			result = append(result, &copied)
		}
	}

	return result, nil
}

// persist сериализует коллекцию и синхронно записывает ее в хранилище.
// Вызывается только под r.mu.
func (r *Repository) persist(ctx context.Context) error {
	records := make([]bookingRecord, len(r.bookings))
	for i, b := range r.bookings {
		records[i] = toRecord(b)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: persist - marshal %d records: %v", ErrWriteState, len(records), err)
	}

	if err := r.store.Write(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: persist - write key %s: %v", ErrWriteState, r.key, err)
	}

	return nil
}

func (r *Repository) copyAll() []*domain.Booking {
	result := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		copied := *b
		result[i] = &copied
	}
	return result
}
