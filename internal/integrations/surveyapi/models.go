package surveyapi

// Site модель объекта (site) из survey API
type Site struct {
	Idx    string `json:"idx"`
	SiteID string `json:"site_id,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Label возвращает человекочитаемую подпись объекта ("ST0001 Taman Melati")
// Если site_id и name пустые, возвращает idx.
func (s Site) Label() string {
	label := s.SiteID
	if s.Name != "" {
		if label != "" {
			label += " "
		}
		label += s.Name
	}
	if label == "" {
		return s.Idx
	}
	return label
}

// Survey модель записи обследования из survey API
type Survey struct {
	Idx             string  `json:"idx"`
	Site            Site    `json:"site"`
	SurveyorBooking int64   `json:"surveyor_booking"`
	TimeSlot        string  `json:"time_slot"` // "10:00-11:00"
	SurveyType      string  `json:"survey_type"`
	BDRemarks       string  `json:"bd_remarks,omitempty"`
	IsCompleted     bool    `json:"is_completed"`
	CompletedOn     *string `json:"completed_on"`

	// Поля завершения (могут отсутствовать в старых записях upstream)
	SurveyRemarks      *string `json:"survey_remarks,omitempty"`
	SurveyPhotoDataURL *string `json:"survey_photo_data_url,omitempty"`
}

// SurveyList пагинированный ответ списка обследований
type SurveyList struct {
	TotalPages      int      `json:"total_pages,omitempty"`
	TotalRecords    int      `json:"total_records,omitempty"`
	NextPageURL     *string  `json:"next_page_url,omitempty"`
	PreviousPageURL *string  `json:"previous_page_url,omitempty"`
	CurrentPage     int      `json:"current_page,omitempty"`
	Results         []Survey `json:"results"`
}

// CreateSurveyRequest тело запроса на создание обследования
type CreateSurveyRequest struct {
	Site            string `json:"site"`             // idx объекта ("ST...")
	SurveyorBooking int64  `json:"surveyor_booking"` // pk аккаунта сюрвейера
	TimeSlot        string `json:"time_slot"`        // "10:00-11:00"
	SurveyType      string `json:"survey_type"`
	BDRemarks       string `json:"bd_remarks"`
}

// CompleteSurveyRequest тело запроса на завершение обследования
type CompleteSurveyRequest struct {
	IsCompleted        bool   `json:"is_completed"`
	SurveyRemarks      string `json:"survey_remarks"`
	SurveyPhotoDataURL string `json:"survey_photo_data_url"`
}

// ErrorResponse структурированное тело ошибки от survey API
type ErrorResponse struct {
	Detail string `json:"detail"`
}
