package get_month_density

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

type AggregationService interface {
	MonthDensity(surveyors []domain.Surveyor, year int, month time.Month) map[string]domain.MonthDensity
}

type SurveyorDirectory interface {
	Surveyors() []domain.Surveyor
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
