package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

func newBooking(surveyorID int64, dateISO, startLabel string) *domain.Booking {
	return &domain.Booking{
		Idx:               "SV-1",
		SurveyorBookingID: surveyorID,
		DateISO:           dateISO,
		StartLabel:        startLabel,
		EndLabel:          "11:00 AM",
		WireSlot:          "10:00-11:00",
	}
}

func TestStore_InsertAndGet(t *testing.T) {
	store := NewStore()
	b := newBooking(7, "2026-08-28", "10:00 AM")

	store.Insert(b)

	got, err := store.Get(b.Key())
	require.NoError(t, err)
	assert.Equal(t, b.Idx, got.Idx)
	assert.Equal(t, 1, store.Len())

	// Get возвращает копию: мутация снаружи не меняет хранилище
	got.IsCompleted = true
	again, err := store.Get(b.Key())
	require.NoError(t, err)
	assert.False(t, again.IsCompleted)
}

func TestStore_GetMissing(t *testing.T) {
	store := NewStore()

	_, err := store.Get(domain.SlotKey{DateISO: "2026-08-28", SurveyorBookingID: 1, StartLabel: "9:00 AM"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStore_InsertOverwritesSameKey(t *testing.T) {
	store := NewStore()
	b := newBooking(7, "2026-08-28", "10:00 AM")
	store.Insert(b)

	updated := newBooking(7, "2026-08-28", "10:00 AM")
	updated.Idx = "SV-2"
	store.Insert(updated)

	got, err := store.Get(b.Key())
	require.NoError(t, err)
	assert.Equal(t, "SV-2", got.Idx)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	b := newBooking(7, "2026-08-28", "10:00 AM")
	store.Insert(b)

	require.NoError(t, store.Delete(b.Key()))
	assert.Equal(t, 0, store.Len())

	assert.ErrorIs(t, store.Delete(b.Key()), ErrBookingNotFound)
}

func TestStore_CountForDay(t *testing.T) {
	store := NewStore()
	store.Insert(newBooking(7, "2026-08-28", "9:00 AM"))
	store.Insert(newBooking(7, "2026-08-28", "10:00 AM"))
	store.Insert(newBooking(7, "2026-08-29", "9:00 AM"))
	store.Insert(newBooking(8, "2026-08-28", "9:00 AM"))

	// Завершенные считаются наравне с активными
	completed := newBooking(7, "2026-08-28", "11:00 AM")
	completed.IsCompleted = true
	store.Insert(completed)

	assert.Equal(t, 3, store.CountForDay(7, "2026-08-28"))
	assert.Equal(t, 1, store.CountForDay(7, "2026-08-29"))
	assert.Equal(t, 1, store.CountForDay(8, "2026-08-28"))
	assert.Equal(t, 0, store.CountForDay(9, "2026-08-28"))
}

func TestStore_ListSnapshot(t *testing.T) {
	store := NewStore()
	store.Insert(newBooking(7, "2026-08-28", "9:00 AM"))
	store.Insert(newBooking(8, "2026-08-28", "10:00 AM"))

	list := store.List()
	assert.Len(t, list, 2)

	// Снимок независим от хранилища
	list[0].IsCompleted = true
	for _, b := range store.List() {
		assert.False(t, b.IsCompleted)
	}
}
