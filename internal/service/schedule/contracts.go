package schedule

import "github.com/aimanhzq/Survey-BookingService/internal/domain"

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Get(key domain.SlotKey) (*domain.Booking, error)
	CountForDay(surveyorBookingID int64, dateISO string) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
