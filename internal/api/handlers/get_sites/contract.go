package get_sites

import (
	bookingsModels "github.com/aimanhzq/Survey-BookingService/internal/service/bookings/models"
)

type SiteDirectory interface {
	Sites() []bookingsModels.SiteOption
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
