package kvstore

import "context"

// Store контракт key-value хранилища для коллекции бронирований.
// Коллекция целиком сериализуется в один ключ; хранилищу не нужно
// ничего знать о структуре данных.
type Store interface {
	// Read возвращает значение ключа. ErrKeyNotFound, если ключ отсутствует.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write записывает значение ключа, перезаписывая предыдущее.
	Write(ctx context.Context, key string, value []byte) error

	// Close освобождает ресурсы хранилища
	Close() error
}
