package create_booking

import "errors"

var (
	// ErrDateNotInEvent возвращается, когда дата не входит в даты выставки
	ErrDateNotInEvent = errors.New("create_booking: date is not an exhibition date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	// рабочего окна выбранной даты
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят на момент отправки формы
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
