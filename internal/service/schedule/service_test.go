package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	bookingStore "github.com/aimanhzq/Survey-BookingService/internal/infra/storage/booking"
	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const testDate = "2026-08-28"

func seedBooking(store *bookingStore.Store, surveyorID int64, startLabel string, completed bool) {
	store.Insert(&domain.Booking{
		Idx:               "SV-" + startLabel,
		SurveyorBookingID: surveyorID,
		DateISO:           testDate,
		StartLabel:        startLabel,
		IsCompleted:       completed,
	})
}

func TestDeriveStatus(t *testing.T) {
	store := bookingStore.NewStore()
	svc := NewService(store, nopLogger{})

	seedBooking(store, 7, "10:00 AM", false)
	seedBooking(store, 7, "1:00 PM", true)

	bookable := &domain.Surveyor{BookingID: 7, Name: "Amin"}
	sentinel := &domain.Surveyor{BookingID: 0, Name: "Placeholder"}

	testCases := []struct {
		name     string
		surveyor *domain.Surveyor
		label    string
		want     domain.SlotStatus
	}{
		{name: "no booking means available", surveyor: bookable, label: "9:00 AM", want: domain.StatusAvailable},
		{name: "active booking means booked", surveyor: bookable, label: "10:00 AM", want: domain.StatusBooked},
		{name: "completed booking means completed", surveyor: bookable, label: "1:00 PM", want: domain.StatusCompleted},
		{name: "sentinel surveyor always unavailable", surveyor: sentinel, label: "9:00 AM", want: domain.StatusUnavailable},
		{name: "sentinel unavailable even on booked label", surveyor: sentinel, label: "10:00 AM", want: domain.StatusUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.DeriveStatus(tc.surveyor, testDate, tc.label))
		})
	}
}

func TestDayStatuses_CoversFullGrid(t *testing.T) {
	store := bookingStore.NewStore()
	svc := NewService(store, nopLogger{})
	seedBooking(store, 7, "10:00 AM", false)

	statuses := svc.DayStatuses(&domain.Surveyor{BookingID: 7}, testDate)

	assert.Len(t, statuses, timegrid.SlotCount())
	assert.Equal(t, domain.StatusBooked, statuses["10:00 AM"])
	assert.Equal(t, domain.StatusAvailable, statuses["9:00 AM"])
}

func TestDayRows(t *testing.T) {
	store := bookingStore.NewStore()
	svc := NewService(store, nopLogger{})
	seedBooking(store, 7, "10:00 AM", false)
	seedBooking(store, 7, "11:00 AM", true)

	surveyors := []domain.Surveyor{
		{BookingID: 7, Name: "Amin", Region: "Central", State: "Selangor"},
		{BookingID: 0, Name: "Placeholder"},
	}

	rows := svc.DayRows(surveyors, testDate)

	assert.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Used)
	assert.Equal(t, domain.MaxBookingsPerDay, rows[0].Capacity)
	assert.Equal(t, "Amin", rows[0].Name)

	assert.Equal(t, 0, rows[1].Used)
	for _, status := range rows[1].Slots {
		assert.Equal(t, domain.StatusUnavailable, status)
	}
}

func TestCanBook(t *testing.T) {
	store := bookingStore.NewStore()
	svc := NewService(store, nopLogger{})
	surveyor := &domain.Surveyor{BookingID: 7}

	// Пустой день: можно
	assert.True(t, svc.CanBook(surveyor, testDate))

	seedBooking(store, 7, "9:00 AM", false)
	seedBooking(store, 7, "10:00 AM", false)
	assert.True(t, svc.CanBook(surveyor, testDate))

	// Третье бронирование добивает лимит, завершенность роли не играет
	seedBooking(store, 7, "11:00 AM", true)
	assert.False(t, svc.CanBook(surveyor, testDate))

	// Другой день не затронут
	assert.Equal(t, 0, svc.UsedCount(7, "2026-08-29"))

	// Sentinel никогда не может бронировать
	assert.False(t, svc.CanBook(&domain.Surveyor{BookingID: 0}, testDate))
}
