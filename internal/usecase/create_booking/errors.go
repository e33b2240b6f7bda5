package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSurveyorNotFound возвращается, когда сюрвейера нет в каталоге
	ErrSurveyorNotFound = errors.New("create_booking: surveyor not found")

	// ErrSurveyorNotBookable возвращается для сюрвейера без валидного
	// аккаунта (sentinel id) — каждый его слот permanently unavailable
	ErrSurveyorNotBookable = errors.New("create_booking: surveyor has no booking account")

	// ErrCapacityExceeded возвращается, когда достигнут дневной лимит
	// бронирований сюрвейера
	ErrCapacityExceeded = errors.New("create_booking: daily booking capacity exceeded")

	// ErrSlotNotAvailable возвращается, когда целевой слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
