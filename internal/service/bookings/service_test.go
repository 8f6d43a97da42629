package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediana/WHX-BookingService/internal/domain"
	bookingRepo "github.com/mediana/WHX-BookingService/internal/infra/storage/booking"
	"github.com/mediana/WHX-BookingService/internal/service/bookings/models"
	"github.com/mediana/WHX-BookingService/pkg/ptr"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	ListFunc        func(ctx context.Context) ([]*domain.Booking, error)
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Booking, error)
	UpdateFunc      func(ctx context.Context, id string, update domain.BookingUpdate) error
	DeleteFunc      func(ctx context.Context, id string) error
	FindByEmailFunc func(ctx context.Context, email string) ([]*domain.Booking, error)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *MockBookingRepository) Update(ctx context.Context, id string, update domain.BookingUpdate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return []*domain.Booking{}, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testBooking(id, name, email, date string, slot types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		Name:            name,
		Email:           email,
		CompanyName:     "GulfMed Trading",
		Country:         "United Arab Emirates",
		ProductInterest: "Patient Monitors",
		InquiryType:     "Purchasing Inquiry",
		Date:            date,
		Time:            slot,
		CreatedAt:       time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_List_SortsBySchedule(t *testing.T) {
	repo := &MockBookingRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Booking, error) {
			// Порядок создания, не расписания
			return []*domain.Booking{
				testBooking("3", "Carlos", "carlos@medsupply.mx", "2026-02-10", "10:00"),
				testBooking("1", "Ahmed", "ahmed@gulfmed.ae", "2026-02-09", "14:30"),
				testBooking("2", "Fatima", "fatima@alshifa.sa", "2026-02-09", "10:00"),
			}, nil
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "2", resp.Bookings[0].ID)
	assert.Equal(t, "1", resp.Bookings[1].ID)
	assert.Equal(t, "3", resp.Bookings[2].ID)
}

func TestService_List_FilterByDate(t *testing.T) {
	repo := &MockBookingRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Booking, error) {
			return []*domain.Booking{
				testBooking("1", "Ahmed", "ahmed@gulfmed.ae", "2026-02-09", "10:00"),
				testBooking("2", "Fatima", "fatima@alshifa.sa", "2026-02-10", "10:00"),
			}, nil
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Date: ptr.Ptr("2026-02-10"),
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "2", resp.Bookings[0].ID)
}

func TestService_List_SearchIsCaseInsensitive(t *testing.T) {
	repo := &MockBookingRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Booking, error) {
			return []*domain.Booking{
				testBooking("1", "Ahmed Al Mansoori", "ahmed@gulfmed.ae", "2026-02-09", "10:00"),
				testBooking("2", "Fatima Al Qasimi", "fatima@alshifa.sa", "2026-02-09", "10:30"),
			}, nil
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	// Поиск по имени
	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Search: ptr.Ptr("AHMED"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "1", resp.Bookings[0].ID)

	// Поиск по email
	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{
		Search: ptr.Ptr("alshifa"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "2", resp.Bookings[0].ID)

	// Поиск по компании попадает в обоих
	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{
		Search: ptr.Ptr("gulfmed trading"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := &MockBookingRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Booking, error) {
			return nil, errors.New("store unavailable")
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Booking, error) {
			if id == "1" {
				return testBooking("1", "Ahmed", "ahmed@gulfmed.ae", "2026-02-09", "10:00"), nil
			}
			return nil, bookingRepo.ErrBookingNotFound
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	resp, err := svc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "10:00", resp.Time)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Update(t *testing.T) {
	var gotUpdate domain.BookingUpdate
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Booking, error) {
			return testBooking("1", "Ahmed", "ahmed@gulfmed.ae", "2026-02-09", "10:00"), nil
		},
		UpdateFunc: func(ctx context.Context, id string, update domain.BookingUpdate) error {
			gotUpdate = update
			return nil
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	err := svc.Update(context.Background(), "1", &models.UpdateBookingRequest{
		Name: ptr.Ptr("Ahmed Al Mansoori"),
		Time: ptr.Ptr("14:30"),
	})
	require.NoError(t, err)

	require.NotNil(t, gotUpdate.Name)
	assert.Equal(t, "Ahmed Al Mansoori", *gotUpdate.Name)
	require.NotNil(t, gotUpdate.Time)
	assert.Equal(t, types.TimeString("14:30"), *gotUpdate.Time)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, nil, noopLogger{})

	err := svc.Update(context.Background(), "missing", &models.UpdateBookingRequest{
		Name: ptr.Ptr("Ghost"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Update_EmptyUpdate(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, nil, noopLogger{})

	err := svc.Update(context.Background(), "1", &models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_InvalidTime(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, nil, noopLogger{})

	err := svc.Update(context.Background(), "1", &models.UpdateBookingRequest{
		Time: ptr.Ptr("25:99"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	deleted := ""
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Booking, error) {
			return testBooking("1", "Ahmed", "ahmed@gulfmed.ae", "2026-02-09", "10:00"), nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	err := svc.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", deleted)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, nil, noopLogger{})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_FindByEmail(t *testing.T) {
	repo := &MockBookingRepository{
		FindByEmailFunc: func(ctx context.Context, email string) ([]*domain.Booking, error) {
			return []*domain.Booking{
				testBooking("1", "Ahmed", "ahmed@gulfmed.ae", "2026-02-09", "10:00"),
			}, nil
		},
	}
	svc := NewService(repo, nil, noopLogger{})

	resp, err := svc.FindByEmail(context.Background(), "ahmed@gulfmed.ae")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestService_FindByEmail_EmptyEmail(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, nil, noopLogger{})

	_, err := svc.FindByEmail(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
