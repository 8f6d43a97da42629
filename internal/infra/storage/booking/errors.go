package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrCorruptedData возвращается, когда состояние в хранилище нечитаемо.
	// Отличает "бронирований еще нет" от "состояние повреждено" - это разные ситуации,
	// и молча терять данные нельзя.
	ErrCorruptedData = errors.New("booking.repository: stored state is not parsable")

	// ErrReadState возвращается при ошибке чтения состояния из хранилища
	ErrReadState = errors.New("booking.repository: failed to read state")

	// ErrWriteState возвращается при ошибке записи состояния в хранилище
	ErrWriteState = errors.New("booking.repository: failed to persist state")
)
