package complete_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда по ключу нет бронирования
	ErrBookingNotFound = errors.New("complete_booking: booking not found")

	// ErrAlreadyCompleted возвращается при повторном завершении.
	// Повторный вызов — no-op: первые remarks/фото не перезаписываются.
	ErrAlreadyCompleted = errors.New("complete_booking: booking is already completed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_booking: internal error")
)
