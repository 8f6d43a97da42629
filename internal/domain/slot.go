package domain

import "github.com/mediana/WHX-BookingService/pkg/types"

// Slot represents a bookable time slot on an exhibition date
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool // true, если слот еще не занят бронированием
}
