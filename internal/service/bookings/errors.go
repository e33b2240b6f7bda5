package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено по ключу
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyCompleted возвращается при попытке отменить завершенное
	// бронирование. Завершенные бронирования заблокированы для изменений.
	ErrAlreadyCompleted = errors.New("bookings: booking is already completed")

	// ErrSurveyorNotFound возвращается, когда сюрвейера нет в каталоге
	ErrSurveyorNotFound = errors.New("bookings: surveyor not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
