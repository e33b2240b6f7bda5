package get_week_usage

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

// WeekUsageResponse HTTP response model: загрузка сюрвейеров по дням недели
type WeekUsageResponse struct {
	WeekStart string         `json:"weekStart"`
	Days      []string       `json:"days"`
	Rows      []WeekUsageRow `json:"rows"`
}

// WeekUsageRow загрузка одного сюрвейера
type WeekUsageRow struct {
	SurveyorBookingID int64                  `json:"surveyorBookingId"`
	Name              string                 `json:"name"`
	Days              map[string]DayCapacity `json:"days"` // ISO дата -> использование
}

// DayCapacity использование дневного лимита
type DayCapacity struct {
	Used     int  `json:"used"`
	Capacity int  `json:"capacity"`
	Full     bool `json:"full"`
}

// BuildResponse собирает HTTP response из результата агрегации
func BuildResponse(
	weekStart time.Time,
	surveyors []domain.Surveyor,
	usage map[int64]map[string]domain.WeekUsage,
) *WeekUsageResponse {
	days := make([]string, 0, domain.WeekDays)
	for i := 0; i < domain.WeekDays; i++ {
		days = append(days, weekStart.AddDate(0, 0, i).Format(domain.DateFormat))
	}

	out := &WeekUsageResponse{
		WeekStart: weekStart.Format(domain.DateFormat),
		Days:      days,
		Rows:      make([]WeekUsageRow, 0, len(surveyors)),
	}

	for _, sv := range surveyors {
		row := WeekUsageRow{
			SurveyorBookingID: sv.BookingID,
			Name:              sv.Name,
			Days:              make(map[string]DayCapacity, domain.WeekDays),
		}
		for _, day := range days {
			u := usage[sv.BookingID][day]
			row.Days[day] = DayCapacity{
				Used:     u.Used,
				Capacity: u.Capacity,
				Full:     u.IsFull(),
			}
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}
