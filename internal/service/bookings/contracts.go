package bookings

import (
	"context"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/randomuser"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Insert(b *domain.Booking)
	Get(key domain.SlotKey) (*domain.Booking, error)
	Delete(key domain.SlotKey) error
	Len() int
}

// SurveyAPIClient интерфейс клиента upstream survey API
type SurveyAPIClient interface {
	List(ctx context.Context, page int) (*surveyapi.SurveyList, error)
}

// ProfileDirectory интерфейс каталога профилей сюрвейеров
type ProfileDirectory interface {
	FetchProfiles(ctx context.Context, count int) []randomuser.Profile
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
