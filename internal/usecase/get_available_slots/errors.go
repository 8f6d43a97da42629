package get_available_slots

import "errors"

var (
	// ErrDateNotInEvent возвращается, когда дата не входит в даты выставки
	ErrDateNotInEvent = errors.New("get_available_slots: date is not an exhibition date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
