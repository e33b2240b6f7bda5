package complete_booking

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	completeBooking "github.com/aimanhzq/Survey-BookingService/internal/usecase/complete_booking"
)

// CompleteBookingRequest HTTP request model
type CompleteBookingRequest struct {
	SurveyorBookingID  int64  `json:"surveyorBookingId"`
	Date               string `json:"date"`      // "2026-08-28"
	StartTime          string `json:"startTime"` // "10:00 AM"
	SurveyRemarks      string `json:"surveyRemarks"`
	SurveyPhotoDataURL string `json:"surveyPhotoDataUrl"`
}

// CompleteBookingResponse HTTP response model
type CompleteBookingResponse struct {
	Idx            string `json:"idx"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	SurveyRemarks  string `json:"surveyRemarks"`
	SurveyPhotoRef string `json:"surveyPhotoRef"`
	CompletedAt    string `json:"completedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompleteBookingRequest) ToUseCaseRequest() (*completeBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &completeBooking.Request{
		SurveyorBookingID: r.SurveyorBookingID,
		Date:              date,
		StartLabel:        r.StartTime,
		SurveyRemarks:     r.SurveyRemarks,
		SurveyPhotoRef:    r.SurveyPhotoDataURL,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeBooking.Response) *CompleteBookingResponse {
	return &CompleteBookingResponse{
		Idx:            resp.Idx,
		Date:           resp.DateISO,
		StartTime:      resp.StartLabel,
		EndTime:        resp.EndLabel,
		SurveyRemarks:  resp.SurveyRemarks,
		SurveyPhotoRef: resp.SurveyPhotoRef,
		CompletedAt:    resp.CompletedAt.Format(time.RFC3339),
	}
}
