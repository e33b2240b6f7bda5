package get_surveyors

import (
	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

type SurveyorDirectory interface {
	Surveyors() []domain.Surveyor
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
