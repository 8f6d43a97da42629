package kvstore

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kvstore: key not found")

	// ErrRead возвращается при ошибке чтения из хранилища
	ErrRead = errors.New("kvstore: failed to read key")

	// ErrWrite возвращается при ошибке записи в хранилище
	ErrWrite = errors.New("kvstore: failed to write key")
)
