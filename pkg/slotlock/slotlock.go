package slotlock

import (
	"context"
	"sync"
)

// Manager сериализует критические секции бронирования.
// Проверка доступности слота и создание бронирования должны выполняться
// под одной блокировкой, иначе два конкурентных запроса могут занять один слот.
type Manager struct {
	mu sync.Mutex
}

// NewManager создает новый менеджер блокировок
func NewManager() *Manager {
	return &Manager{}
}

// DoSerializable выполняет fn под глобальной блокировкой.
// Если контекст отменен до захвата блокировки, fn не выполняется.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}
