package domain

// Slot grid constants
const (
	// SlotDurationMinutes длительность слота - единица бронирования
	SlotDurationMinutes = 30

	// MaxMessageLength максимальная длина дополнительного сообщения
	MaxMessageLength = 1000
)

// DateFormat формат дат выставки (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// StorageKey ключ в key-value хранилище, под которым лежит вся коллекция бронирований
const StorageKey = "whx_bookings_2026"
