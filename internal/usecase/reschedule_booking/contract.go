package reschedule_booking

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Get(key domain.SlotKey) (*domain.Booking, error)
	Insert(b *domain.Booking)
	Delete(key domain.SlotKey) error
}

// StatusDeriver интерфейс вычисления статуса слота
type StatusDeriver interface {
	DeriveStatus(surveyor *domain.Surveyor, dateISO, startLabel string) domain.SlotStatus
}

// SurveyorDirectory интерфейс каталога сюрвейеров
type SurveyorDirectory interface {
	SurveyorByID(bookingID int64) (*domain.Surveyor, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
