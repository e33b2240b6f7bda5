package aggregation

import "github.com/aimanhzq/Survey-BookingService/internal/domain"

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	List() []*domain.Booking
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
