package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mediana/WHX-BookingService/internal/infra/kvstore"
	"github.com/mediana/WHX-BookingService/pkg/psqlbuilder"
)

// Store key-value хранилище поверх PostgreSQL.
// Одна таблица kv_state (key TEXT PRIMARY KEY, value BYTEA, updated_at TIMESTAMPTZ);
// запись выполняется как upsert.
type Store struct {
	db *sql.DB
}

// NewStore создает хранилище и готовит таблицу состояния
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS kv_state (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("%w: NewStore - create kv_state table: %v", kvstore.ErrWrite, err)
	}

	return &Store{db: db}, nil
}

// Read читает значение ключа
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From("kv_state").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Read - build query for key %s: %v", kvstore.ErrRead, key, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read - key %s: %v", kvstore.ErrRead, key, err)
	}

	return value, nil
}

// Write записывает значение ключа (upsert)
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert("kv_state").
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Write - build query for key %s: %v", kvstore.ErrWrite, key, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Write - key %s: %v", kvstore.ErrWrite, key, err)
	}

	return nil
}

// Close закрывает соединение с базой данных
func (s *Store) Close() error {
	return s.db.Close()
}
