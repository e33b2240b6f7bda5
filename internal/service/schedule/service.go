package schedule

import (
	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/service/schedule/models"
	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
)

// Service вычисляет производные состояния расписания: статусы слотов
// и дневной лимит бронирований.
//
// Статусы нигде не хранятся — они выводятся из текущего содержимого
// хранилища при каждом чтении. Кэширования нет намеренно: закэшированный
// статус может разойтись с набором бронирований.
type Service struct {
	store  BookingStore
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// DeriveStatus вычисляет статус слота (сюрвейер, дата, слот).
//
// Правило вывода:
//   - unavailable — у сюрвейера нет валидного аккаунта (sentinel id)
//   - completed   — по ключу есть завершенное бронирование
//   - booked      — по ключу есть незавершенное бронирование
//   - available   — бронирования по ключу нет
func (s *Service) DeriveStatus(surveyor *domain.Surveyor, dateISO, startLabel string) domain.SlotStatus {
	if !surveyor.IsBookable() {
		return domain.StatusUnavailable
	}

	key := domain.SlotKey{
		DateISO:           dateISO,
		SurveyorBookingID: surveyor.BookingID,
		StartLabel:        startLabel,
	}

	b, err := s.store.Get(key)
	if err != nil {
		return domain.StatusAvailable
	}
	if b.IsCompleted {
		return domain.StatusCompleted
	}
	return domain.StatusBooked
}

// DayStatuses вычисляет статусы всех слотов дня для сюрвейера за один проход
func (s *Service) DayStatuses(surveyor *domain.Surveyor, dateISO string) map[string]domain.SlotStatus {
	out := make(map[string]domain.SlotStatus, timegrid.SlotCount())
	for _, label := range timegrid.DayTimes {
		out[label] = s.DeriveStatus(surveyor, dateISO, label)
	}
	return out
}

// DayRows строит строки дневной сетки для набора сюрвейеров
func (s *Service) DayRows(surveyors []domain.Surveyor, dateISO string) []models.DayRow {
	rows := make([]models.DayRow, len(surveyors))
	for i := range surveyors {
		sv := &surveyors[i]
		rows[i] = models.DayRow{
			SurveyorBookingID: sv.BookingID,
			Name:              sv.Name,
			Region:            sv.Region,
			State:             sv.State,
			AvatarURL:         sv.AvatarURL,
			Used:              s.UsedCount(sv.BookingID, dateISO),
			Capacity:          domain.MaxBookingsPerDay,
			Slots:             s.DayStatuses(sv, dateISO),
		}
	}
	return rows
}

// UsedCount возвращает число бронирований сюрвейера на дату
// (booked и completed считаются одинаково)
func (s *Service) UsedCount(surveyorBookingID int64, dateISO string) int {
	if surveyorBookingID <= 0 {
		return 0
	}
	return s.store.CountForDay(surveyorBookingID, dateISO)
}

// CanBook проверяет дневной лимит: true, если у сюрвейера на дату строго
// меньше domain.MaxBookingsPerDay бронирований. Для sentinel-сюрвейеров
// всегда false.
//
// Create обязан вызывать CanBook непосредственно перед вставкой: проверка и
// вставка образуют единый check-then-act под мьютексом lifecycle-операций.
func (s *Service) CanBook(surveyor *domain.Surveyor, dateISO string) bool {
	if !surveyor.IsBookable() {
		return false
	}
	return s.store.CountForDay(surveyor.BookingID, dateISO) < domain.MaxBookingsPerDay
}
