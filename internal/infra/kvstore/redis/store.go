package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/mediana/WHX-BookingService/internal/infra/kvstore"
)

// Store key-value хранилище поверх Redis
type Store struct {
	client *redis.Client
}

// NewStore создает хранилище и проверяет соединение с Redis
func NewStore(ctx context.Context, addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: NewStore - ping redis at %s: %v", kvstore.ErrRead, addr, err)
	}

	return &Store{client: client}, nil
}

// Read читает значение ключа
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read - key %s: %v", kvstore.ErrRead, key, err)
	}
	return data, nil
}

// Write записывает значение ключа без TTL
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Write - key %s: %v", kvstore.ErrWrite, key, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (s *Store) Close() error {
	return s.client.Close()
}
