package storemetrics

import (
	"context"
	"errors"
	"time"

	"github.com/mediana/WHX-BookingService/internal/infra/kvstore"
	"github.com/mediana/WHX-BookingService/pkg/metrics"
)

const (
	statusOK       = "ok"
	statusError    = "error"
	statusNotFound = "not_found"
)

// Store обертка над kvstore.Store, снимающая prometheus метрики
// по каждой операции чтения и записи.
type Store struct {
	inner   kvstore.Store
	metrics *metrics.Metrics
	driver  string
}

// Wrap оборачивает хранилище сбором метрик. driver попадает в label метрик.
func Wrap(inner kvstore.Store, m *metrics.Metrics, driver string) *Store {
	return &Store{inner: inner, metrics: m, driver: driver}
}

// Read читает значение ключа, фиксируя длительность и статус операции
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.inner.Read(ctx, key)
	s.metrics.ObserveStoreOperation(s.driver, "read", readStatus(err), time.Since(start))
	return data, err
}

// Write записывает значение ключа, фиксируя длительность и статус операции
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.inner.Write(ctx, key, value)

	status := statusOK
	if err != nil {
		status = statusError
	}
	s.metrics.ObserveStoreOperation(s.driver, "write", status, time.Since(start))

	return err
}

// Close закрывает обернутое хранилище
func (s *Store) Close() error {
	return s.inner.Close()
}

func readStatus(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, kvstore.ErrKeyNotFound):
		// Отсутствие ключа - штатная ситуация, не ошибка хранилища
		return statusNotFound
	default:
		return statusError
	}
}
