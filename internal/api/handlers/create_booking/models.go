package create_booking

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	createBooking "github.com/aimanhzq/Survey-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SurveyorBookingID int64  `json:"surveyorBookingId"`
	Date              string `json:"date"`      // "2026-08-28"
	StartTime         string `json:"startTime"` // "10:00 AM"
	SiteIdx           string `json:"siteIdx"`
	SurveyType        string `json:"surveyType"`
	BDRemarks         string `json:"bdRemarks,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Idx               string `json:"idx"`
	SiteIdx           string `json:"siteIdx"`
	SiteName          string `json:"siteName"`
	SurveyorBookingID int64  `json:"surveyorBookingId"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	TimeSlot          string `json:"timeSlot"`
	SurveyType        string `json:"surveyType"`
	BDRemarks         string `json:"bdRemarks,omitempty"`
	CreatedAt         string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SurveyorBookingID: r.SurveyorBookingID,
		Date:              date,
		StartLabel:        r.StartTime,
		SiteIdx:           r.SiteIdx,
		SurveyType:        r.SurveyType,
		BDRemarks:         r.BDRemarks,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Idx:               resp.Idx,
		SiteIdx:           resp.SiteIdx,
		SiteName:          resp.SiteName,
		SurveyorBookingID: resp.SurveyorBookingID,
		Date:              resp.DateISO,
		StartTime:         resp.StartLabel,
		EndTime:           resp.EndLabel,
		TimeSlot:          resp.WireSlot,
		SurveyType:        resp.SurveyType,
		BDRemarks:         resp.BDRemarks,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
