package complete_booking

import "time"

// Request модель запроса на завершение обследования
type Request struct {
	SurveyorBookingID int64
	Date              time.Time
	StartLabel        string
	SurveyRemarks     string // обязательны (после trim)
	SurveyPhotoRef    string // обязательна ссылка на фото-подтверждение
}

// Response модель ответа с завершенным бронированием
type Response struct {
	Idx            string
	DateISO        string
	StartLabel     string
	EndLabel       string
	SurveyRemarks  string
	SurveyPhotoRef string
	CompletedAt    time.Time
}
