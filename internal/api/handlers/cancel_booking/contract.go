package cancel_booking

import (
	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

type BookingService interface {
	Cancel(key domain.SlotKey) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
