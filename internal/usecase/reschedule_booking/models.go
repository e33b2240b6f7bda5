package reschedule_booking

import "time"

// Outcome результат переноса
type Outcome string

const (
	// OutcomeMoved бронирование перенесено на другой слот того же дня
	OutcomeMoved Outcome = "moved"

	// OutcomeCancelled свободных слотов в дне не нашлось,
	// перенос деградировал до отмены
	OutcomeCancelled Outcome = "cancelled"
)

// Request модель запроса на перенос бронирования
type Request struct {
	SurveyorBookingID int64
	Date              time.Time
	StartLabel        string // текущий слот бронирования
}

// Response модель ответа с результатом переноса
type Response struct {
	Outcome       Outcome
	Idx           string // канонический идентификатор бронирования
	DateISO       string
	OldStartLabel string
	NewStartLabel string // пустой, если Outcome == cancelled
	NewEndLabel   string // пустой, если Outcome == cancelled
}
