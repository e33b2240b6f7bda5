package get_month_density

import "github.com/aimanhzq/Survey-BookingService/internal/domain"

// MonthDensityResponse HTTP response model: плотность бронирований по дням
// месяца. Дни без бронирований в карту не попадают.
type MonthDensityResponse struct {
	Year    int                   `json:"year"`
	Month   int                   `json:"month"`
	Density map[string]DayDensity `json:"density"` // ISO дата -> уровень
}

// DayDensity уровень плотности одного дня
type DayDensity struct {
	Level string   `json:"level"`
	Dots  []string `json:"dots"`
}

// BuildResponse собирает HTTP response из карты плотности
func BuildResponse(year int, month int, density map[string]domain.MonthDensity) *MonthDensityResponse {
	out := &MonthDensityResponse{
		Year:    year,
		Month:   month,
		Density: make(map[string]DayDensity, len(density)),
	}

	for day, level := range density {
		out.Density[day] = DayDensity{
			Level: string(level),
			Dots:  level.Dots(),
		}
	}

	return out
}
