package surveyapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured возвращается, когда base URL или токен не заданы.
	// Клиент в этом состоянии не выполняет сетевых вызовов.
	ErrNotConfigured = errors.New("surveyapi client: missing upstream base URL or token")

	// ErrUpstream возвращается при non-2xx ответе upstream
	ErrUpstream = errors.New("surveyapi client: upstream error")

	// ErrInvalidResponse возвращается при некорректном (нечитаемом) ответе от сервиса
	ErrInvalidResponse = errors.New("surveyapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("surveyapi client: internal error")
)

// APIError несёт статус и структурированное тело ошибки upstream.
// Для не-JSON тела Detail синтезируется ("Upstream returned non-JSON (503)").
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("surveyapi client: upstream status %d: %s", e.StatusCode, e.Detail)
}

// Unwrap сопоставляет APIError с ErrUpstream через errors.Is
func (e *APIError) Unwrap() error {
	return ErrUpstream
}
