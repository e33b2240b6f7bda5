package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	SurveyorBookingID int64     // pk аккаунта сюрвейера в upstream
	Date              time.Time // дата бронирования (без времени)
	StartLabel        string    // display label слота, например "10:00 AM"
	SiteIdx           string    // idx объекта ("ST...")
	SurveyType        string
	BDRemarks         string // заметки заказчика (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Idx               string // канонический идентификатор upstream
	SiteIdx           string
	SiteName          string
	SurveyorBookingID int64
	DateISO           string
	StartLabel        string
	EndLabel          string
	WireSlot          string
	SurveyType        string
	BDRemarks         string
	CreatedAt         time.Time
}
