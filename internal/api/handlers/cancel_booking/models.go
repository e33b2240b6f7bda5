package cancel_booking

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	SurveyorBookingID int64  `json:"surveyorBookingId"`
	Date              string `json:"date"`      // "2026-08-28"
	StartTime         string `json:"startTime"` // "10:00 AM"
}

// ToSlotKey конвертирует HTTP запрос в ключ бронирования
func (r *CancelBookingRequest) ToSlotKey() (domain.SlotKey, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return domain.SlotKey{}, err
	}

	return domain.SlotKey{
		DateISO:           date.Format(domain.DateFormat),
		SurveyorBookingID: r.SurveyorBookingID,
		StartLabel:        r.StartTime,
	}, nil
}
