package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено по ключу
	ErrBookingNotFound = errors.New("booking.store: booking not found")
)
