package reschedule_booking

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	rescheduleBooking "github.com/aimanhzq/Survey-BookingService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	SurveyorBookingID int64  `json:"surveyorBookingId"`
	Date              string `json:"date"`      // "2026-08-28"
	StartTime         string `json:"startTime"` // "10:00 AM"
}

// RescheduleBookingResponse HTTP response model.
// При outcome == "cancelled" новые времена пустые.
type RescheduleBookingResponse struct {
	Outcome      string `json:"outcome"` // moved | cancelled
	Idx          string `json:"idx"`
	Date         string `json:"date"`
	OldStartTime string `json:"oldStartTime"`
	NewStartTime string `json:"newStartTime,omitempty"`
	NewEndTime   string `json:"newEndTime,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest() (*rescheduleBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		SurveyorBookingID: r.SurveyorBookingID,
		Date:              date,
		StartLabel:        r.StartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		Outcome:      string(resp.Outcome),
		Idx:          resp.Idx,
		Date:         resp.DateISO,
		OldStartTime: resp.OldStartLabel,
		NewStartTime: resp.NewStartLabel,
		NewEndTime:   resp.NewEndLabel,
	}
}
