package complete_booking

import (
	"context"
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Get(key domain.SlotKey) (*domain.Booking, error)
	Insert(b *domain.Booking)
}

// SurveyAPIClient интерфейс клиента upstream survey API
type SurveyAPIClient interface {
	Update(ctx context.Context, idx string, req *surveyapi.CompleteSurveyRequest) error
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
