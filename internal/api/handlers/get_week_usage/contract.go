package get_week_usage

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

type AggregationService interface {
	WeekUsage(surveyors []domain.Surveyor, weekStart time.Time) map[int64]map[string]domain.WeekUsage
}

type SurveyorDirectory interface {
	Surveyors() []domain.Surveyor
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
