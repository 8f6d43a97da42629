package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mediana/WHX-BookingService/internal/infra/kvstore"
)

// Store файловое key-value хранилище.
// Каждый ключ - отдельный файл в каталоге dir. Запись атомарная:
// сначала во временный файл, затем rename, чтобы сбой не оставил
// частично записанное состояние.
type Store struct {
	dir string
}

// NewStore создает файловое хранилище в каталоге dir (создает его при необходимости)
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewStore - create dir %s: %v", kvstore.ErrWrite, dir, err)
	}
	return &Store{dir: dir}, nil
}

// Read читает значение ключа из файла
func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read - key %s: %v", kvstore.ErrRead, key, err)
	}
	return data, nil
}

// Write атомарно записывает значение ключа
func (s *Store) Write(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: Write - create temp file for key %s: %v", kvstore.ErrWrite, key, err)
	}

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: Write - write temp file for key %s: %v", kvstore.ErrWrite, key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: Write - close temp file for key %s: %v", kvstore.ErrWrite, key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: Write - rename temp file for key %s: %v", kvstore.ErrWrite, key, err)
	}

	return nil
}

// Close для файлового хранилища ничего не делает
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
