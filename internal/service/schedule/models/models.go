package models

import "github.com/aimanhzq/Survey-BookingService/internal/domain"

// DayRow строка дневной сетки: статусы всех слотов одного сюрвейера на дату
type DayRow struct {
	SurveyorBookingID int64
	Name              string
	Region            string
	State             string
	AvatarURL         string
	Used              int
	Capacity          int
	Slots             map[string]domain.SlotStatus // ключ — display label слота
}
