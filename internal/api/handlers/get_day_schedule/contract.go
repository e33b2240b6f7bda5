package get_day_schedule

import (
	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	scheduleModels "github.com/aimanhzq/Survey-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	DayRows(surveyors []domain.Surveyor, dateISO string) []scheduleModels.DayRow
}

type SurveyorDirectory interface {
	Surveyors() []domain.Surveyor
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
