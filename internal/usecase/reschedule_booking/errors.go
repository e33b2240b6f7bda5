package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrSurveyorNotFound возвращается, когда сюрвейера нет в каталоге
	ErrSurveyorNotFound = errors.New("reschedule_booking: surveyor not found")

	// ErrBookingNotFound возвращается, когда по ключу нет бронирования
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAlreadyCompleted возвращается при попытке перенести завершенное
	// бронирование — оно заблокировано для изменений
	ErrAlreadyCompleted = errors.New("reschedule_booking: booking is already completed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
