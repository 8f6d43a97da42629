package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/internal/infra/kvstore"
	"github.com/mediana/WHX-BookingService/pkg/ptr"
	"github.com/mediana/WHX-BookingService/pkg/types"
)

const testKey = "test_bookings"

// MockStore is an in-memory mock implementation of kvstore.Store
type MockStore struct {
	data map[string][]byte

	ReadFunc  func(ctx context.Context, key string) ([]byte, error)
	WriteFunc func(ctx context.Context, key string, value []byte) error
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Read(ctx context.Context, key string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, key)
	}
	value, ok := m.data[key]
	if !ok {
		return nil, kvstore.ErrKeyNotFound
	}
	return value, nil
}

func (m *MockStore) Write(ctx context.Context, key string, value []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, key, value)
	}
	m.data[key] = value
	return nil
}

func (m *MockStore) Close() error {
	return nil
}

func testFields(date string, slot types.TimeString) CreateFields {
	return CreateFields{
		Name:            "Ahmed Al Mansoori",
		Email:           "ahmed@gulfmed.ae",
		CompanyName:     "GulfMed Trading",
		Country:         "United Arab Emirates",
		ProductInterest: "Patient Monitors",
		InquiryType:     "Distribution Partnership",
		Date:            date,
		Time:            slot,
	}
}

func TestNewRepository_EmptyStore(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNewRepository_CorruptedState(t *testing.T) {
	store := NewMockStore()
	store.data[testKey] = []byte("{not a json array")

	repo, err := NewRepository(context.Background(), store, testKey)
	assert.ErrorIs(t, err, ErrCorruptedData)

	// Репозиторий работоспособен несмотря на ошибку
	require.NotNil(t, repo)
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNewRepository_ReadError(t *testing.T) {
	store := NewMockStore()
	store.ReadFunc = func(ctx context.Context, key string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}

	_, err := NewRepository(context.Background(), store, testKey)
	assert.ErrorIs(t, err, ErrReadState)
}

func TestRepository_Create(t *testing.T) {
	store := NewMockStore()
	repo, err := NewRepository(context.Background(), store, testKey)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "ahmed@gulfmed.ae", created.Email)

	// Состояние записано в хранилище
	assert.Contains(t, store.data, testKey)
}

func TestRepository_Create_RoundTrip(t *testing.T) {
	store := NewMockStore()
	repo, err := NewRepository(context.Background(), store, testKey)
	require.NoError(t, err)

	first, err := repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), testFields("2026-02-09", "10:30"))
	require.NoError(t, err)

	// Новый репозиторий поверх того же хранилища видит те же бронирования
	// в том же порядке
	reloaded, err := NewRepository(context.Background(), store, testKey)
	require.NoError(t, err)

	all, err := reloaded.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.CreatedAt.Unix(), all[0].CreatedAt.Unix())
}

func TestRepository_Create_WriteFailureRollsBack(t *testing.T) {
	store := NewMockStore()
	repo, err := NewRepository(context.Background(), store, testKey)
	require.NoError(t, err)

	store.WriteFunc = func(ctx context.Context, key string, value []byte) error {
		return errors.New("disk full")
	}

	_, err = repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	assert.ErrorIs(t, err, ErrWriteState)

	// Коллекция в памяти не изменилась
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_Create_DoesNotEnforceSlotUniqueness(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	// Проверка занятости слота - ответственность вызывающей стороны:
	// два Create на один слот оба проходят
	_, err = repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_GetByID(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Update(t *testing.T) {
	store := NewMockStore()
	repo, err := NewRepository(context.Background(), store, testKey)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	newTime := types.TimeString("14:30")
	err = repo.Update(context.Background(), created.ID, domain.BookingUpdate{
		Name: ptr.Ptr("Fatima Al Qasimi"),
		Time: &newTime,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fatima Al Qasimi", got.Name)
	assert.Equal(t, types.TimeString("14:30"), got.Time)

	// ID и CreatedAt неизменны, незатронутые поля сохранились
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Equal(t, created.Email, got.Email)
}

func TestRepository_Update_MissingIDIsNoop(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	err = repo.Update(context.Background(), "nonexistent", domain.BookingUpdate{
		Name: ptr.Ptr("Ghost"),
	})
	assert.NoError(t, err)
}

func TestRepository_Update_WriteFailureRollsBack(t *testing.T) {
	store := NewMockStore()
	repo, err := NewRepository(context.Background(), store, testKey)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	store.WriteFunc = func(ctx context.Context, key string, value []byte) error {
		return errors.New("disk full")
	}

	err = repo.Update(context.Background(), created.ID, domain.BookingUpdate{
		Name: ptr.Ptr("Fatima Al Qasimi"),
	})
	assert.ErrorIs(t, err, ErrWriteState)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Al Mansoori", got.Name)
}

func TestRepository_Delete(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	first, err := repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), testFields("2026-02-09", "10:30"))
	require.NoError(t, err)

	err = repo.Delete(context.Background(), first.ID)
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)

	// Слот удаленного бронирования снова свободен
	available, err := repo.IsAvailable(context.Background(), "2026-02-09", "10:00")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestRepository_Delete_MissingIDIsNoop(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(context.Background(), "nonexistent"))
}

func TestRepository_IsAvailable(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	available, err := repo.IsAvailable(context.Background(), "2026-02-09", "10:00")
	require.NoError(t, err)
	assert.False(t, available)

	// Тот же слот в другой день свободен
	available, err = repo.IsAvailable(context.Background(), "2026-02-10", "10:00")
	require.NoError(t, err)
	assert.True(t, available)

	// Другой слот в тот же день свободен
	available, err = repo.IsAvailable(context.Background(), "2026-02-09", "10:30")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	other := testFields("2026-02-09", "10:30")
	other.Email = "someone@else.com"
	_, err = repo.Create(context.Background(), other)
	require.NoError(t, err)

	// Поиск без учета регистра
	found, err := repo.FindByEmail(context.Background(), "AHMED@GULFMED.AE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ahmed@gulfmed.ae", found[0].Email)

	found, err = repo.FindByEmail(context.Background(), "missing@nowhere.com")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRepository_ListReturnsCopies(t *testing.T) {
	repo, err := NewRepository(context.Background(), NewMockStore(), testKey)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), testFields("2026-02-09", "10:00"))
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	all[0].Name = "Mutated"

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Al Mansoori", got.Name)
}
