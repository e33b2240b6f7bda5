package create_booking

import (
	"context"
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Insert(b *domain.Booking)
}

// StatusDeriver интерфейс вычисления статуса слота
type StatusDeriver interface {
	DeriveStatus(surveyor *domain.Surveyor, dateISO, startLabel string) domain.SlotStatus
}

// CapacityGuard интерфейс проверки дневного лимита бронирований
type CapacityGuard interface {
	CanBook(surveyor *domain.Surveyor, dateISO string) bool
}

// SurveyorDirectory интерфейс каталога сюрвейеров и объектов
type SurveyorDirectory interface {
	SurveyorByID(bookingID int64) (*domain.Surveyor, error)
	SiteLabel(siteIdx string) string
}

// SurveyAPIClient интерфейс клиента upstream survey API
type SurveyAPIClient interface {
	Create(ctx context.Context, req *surveyapi.CreateSurveyRequest) (*surveyapi.Survey, error)
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
