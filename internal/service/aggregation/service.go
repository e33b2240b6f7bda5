package aggregation

import (
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

// Service сводит содержимое хранилища бронирований в недельную загрузку
// и месячную плотность. Все значения производные и вычисляются на каждый
// запрос из текущего снимка хранилища.
type Service struct {
	store  BookingStore
	logger Logger
}

// NewService создает новый экземпляр сервиса агрегации
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// WeekUsage считает загрузку каждого сюрвейера по дням недельного окна
// (понедельник–суббота, 6 дней). Для каждой пары (сюрвейер, дата) — пара
// (занято, вместимость 3); раскладку по цветам делает потребитель.
func (s *Service) WeekUsage(surveyors []domain.Surveyor, weekStart time.Time) map[int64]map[string]domain.WeekUsage {
	start := StartOfWeek(weekStart)
	counts := s.tallyByDay()

	out := make(map[int64]map[string]domain.WeekUsage, len(surveyors))
	for i := range surveyors {
		sv := &surveyors[i]
		days := make(map[string]domain.WeekUsage, domain.WeekDays)
		for d := 0; d < domain.WeekDays; d++ {
			iso := start.AddDate(0, 0, d).Format(domain.DateFormat)
			used := 0
			if sv.IsBookable() {
				used = counts[sv.BookingID][iso]
			}
			days[iso] = domain.WeekUsage{Used: used, Capacity: domain.MaxBookingsPerDay}
		}
		out[sv.BookingID] = days
	}

	s.logger.Info("WeekUsage: computed usage for %d surveyors, week of %s",
		len(surveyors), start.Format(domain.DateFormat))
	return out
}

// MonthDensity классифицирует каждую дату месяца по суммарной загрузке
// всех валидных сюрвейеров. Даты с нулевой вместимостью (нет ни одного
// валидного сюрвейера) пропускаются — деления на ноль не возникает.
func (s *Service) MonthDensity(surveyors []domain.Surveyor, year int, month time.Month) map[string]domain.MonthDensity {
	bookable := 0
	for i := range surveyors {
		if surveyors[i].IsBookable() {
			bookable++
		}
	}

	out := make(map[string]domain.MonthDensity)
	if bookable == 0 {
		s.logger.Warn("MonthDensity: no bookable surveyors, skipping %d-%02d", year, int(month))
		return out
	}

	capacity := bookable * domain.MaxBookingsPerDay
	counts := s.tallyByDay()

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	for day := 1; day <= last.Day(); day++ {
		iso := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)

		usedTotal := 0
		for i := range surveyors {
			if surveyors[i].IsBookable() {
				usedTotal += counts[surveyors[i].BookingID][iso]
			}
		}

		density := domain.ClassifyDensity(float64(usedTotal) / float64(capacity))
		if density == domain.DensityNone {
			continue
		}
		out[iso] = density
	}

	s.logger.Info("MonthDensity: classified %d dates for %d-%02d", len(out), year, int(month))
	return out
}

// tallyByDay строит за один проход по снимку хранилища счётчики
// бронирований: сюрвейер -> дата -> число бронирований
func (s *Service) tallyByDay() map[int64]map[string]int {
	counts := make(map[int64]map[string]int)
	for _, b := range s.store.List() {
		byDay, ok := counts[b.SurveyorBookingID]
		if !ok {
			byDay = make(map[string]int)
			counts[b.SurveyorBookingID] = byDay
		}
		byDay[b.DateISO]++
	}
	return counts
}

// StartOfWeek возвращает понедельник недели, содержащей d
func StartOfWeek(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	weekday := day.Weekday()
	if weekday == time.Sunday {
		return day.AddDate(0, 0, -6)
	}
	return day.AddDate(0, 0, int(time.Monday)-int(weekday))
}
