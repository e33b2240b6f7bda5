package get_day_schedule

import (
	scheduleModels "github.com/aimanhzq/Survey-BookingService/internal/service/schedule/models"
	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
)

// DayScheduleResponse HTTP response model: дневная сетка по всем сюрвейерам
type DayScheduleResponse struct {
	Date      string        `json:"date"`
	TimeSlots []string      `json:"timeSlots"`
	Rows      []SurveyorRow `json:"rows"`
}

// SurveyorRow строка сетки одного сюрвейера
type SurveyorRow struct {
	SurveyorBookingID int64             `json:"surveyorBookingId"`
	Name              string            `json:"name"`
	Region            string            `json:"region"`
	State             string            `json:"state"`
	AvatarURL         string            `json:"avatarUrl,omitempty"`
	Used              int               `json:"used"`
	Capacity          int               `json:"capacity"`
	Slots             map[string]string `json:"slots"` // label -> статус
}

// FromServiceRows конвертирует строки сервиса в HTTP response
func FromServiceRows(dateISO string, rows []scheduleModels.DayRow) *DayScheduleResponse {
	out := &DayScheduleResponse{
		Date:      dateISO,
		TimeSlots: append([]string(nil), timegrid.DayTimes...),
		Rows:      make([]SurveyorRow, 0, len(rows)),
	}

	for _, row := range rows {
		slots := make(map[string]string, len(row.Slots))
		for label, status := range row.Slots {
			slots[label] = string(status)
		}
		out.Rows = append(out.Rows, SurveyorRow{
			SurveyorBookingID: row.SurveyorBookingID,
			Name:              row.Name,
			Region:            row.Region,
			State:             row.State,
			AvatarURL:         row.AvatarURL,
			Used:              row.Used,
			Capacity:          row.Capacity,
			Slots:             slots,
		})
	}

	return out
}
