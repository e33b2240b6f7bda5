package bookings

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	bookingStore "github.com/aimanhzq/Survey-BookingService/internal/infra/storage/booking"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/randomuser"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSurveyClient struct {
	pages   []*surveyapi.SurveyList
	listErr error
}

func (c *fakeSurveyClient) List(ctx context.Context, page int) (*surveyapi.SurveyList, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	if page < 1 || page > len(c.pages) {
		return &surveyapi.SurveyList{}, nil
	}
	return c.pages[page-1], nil
}

type fakeProfiles struct {
	profiles []randomuser.Profile
}

func (f *fakeProfiles) FetchProfiles(ctx context.Context, count int) []randomuser.Profile {
	return f.profiles
}

const testDate = "2026-08-28"

func survey(idx string, surveyorBooking int64, siteIdx, timeSlot string) surveyapi.Survey {
	return surveyapi.Survey{
		Idx:             idx,
		Site:            surveyapi.Site{Idx: siteIdx, SiteID: siteIdx, Name: "Site " + siteIdx},
		SurveyorBooking: surveyorBooking,
		TimeSlot:        timeSlot,
		SurveyType:      "INITIAL",
	}
}

func TestLoad_HydratesStoreAndCatalogs(t *testing.T) {
	store := bookingStore.NewStore()
	client := &fakeSurveyClient{pages: []*surveyapi.SurveyList{
		{
			TotalPages: 2,
			Results: []surveyapi.Survey{
				survey("SV-1", 7, "ST001", "09:00-10:00"),
				survey("SV-2", 9, "ST002", "10:00-11:00"),
				// Записи без валидного сюрвейера в сетку не попадают
				survey("SV-3", 0, "ST003", "11:00-12:00"),
			},
		},
		{
			TotalPages: 2,
			Results: []surveyapi.Survey{
				survey("SV-4", 7, "ST001", "13:00-14:00"),
			},
		},
	}}
	profiles := &fakeProfiles{profiles: []randomuser.Profile{
		{Name: randomuser.Name{First: "Amin", Last: "Hakim"}},
		{Name: randomuser.Name{First: "Mei", Last: "Ling"}},
	}}

	svc := NewService(store, client, profiles, &sync.Mutex{}, nopLogger{})
	result, err := svc.Load(context.Background(), testDate)
	require.NoError(t, err)

	// Обе страницы загружены, запись с sentinel-сюрвейером пропущена
	assert.Equal(t, 3, result.Surveys)
	assert.Equal(t, 2, result.Surveyors)

	// Wire-слоты переведены в display labels, дата привязана к dateISO
	b, err := store.Get(domain.SlotKey{DateISO: testDate, SurveyorBookingID: 7, StartLabel: "9:00 AM"})
	require.NoError(t, err)
	assert.Equal(t, "SV-1", b.Idx)
	assert.Equal(t, "10:00 AM", b.EndLabel)

	// Каталог сюрвейеров: уникальные id по возрастанию, обогащены профилями
	surveyors := svc.Surveyors()
	require.Len(t, surveyors, 2)
	assert.Equal(t, int64(7), surveyors[0].BookingID)
	assert.Equal(t, int64(9), surveyors[1].BookingID)
	assert.Equal(t, "Amin Hakim", surveyors[0].Name)
	assert.NotEmpty(t, surveyors[0].Region)
	assert.NotEmpty(t, surveyors[0].State)

	// Каталог объектов: дедупликация по idx, сортировка
	sites := svc.Sites()
	require.Len(t, sites, 3)
	assert.Equal(t, "ST001", sites[0].Idx)
	assert.Equal(t, "ST003", sites[2].Idx)
}

func TestLoad_EmptyUpstreamFallsBackToSentinels(t *testing.T) {
	store := bookingStore.NewStore()
	client := &fakeSurveyClient{pages: []*surveyapi.SurveyList{{TotalPages: 1}}}
	svc := NewService(store, client, &fakeProfiles{}, &sync.Mutex{}, nopLogger{})

	result, err := svc.Load(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Surveys)
	assert.Equal(t, fallbackSurveyorCount, result.Surveyors)

	for _, sv := range svc.Surveyors() {
		assert.False(t, sv.IsBookable())
		assert.NotEmpty(t, sv.Name)
	}
}

func TestLoad_UpstreamErrorDegradesToEmptyGrid(t *testing.T) {
	store := bookingStore.NewStore()
	client := &fakeSurveyClient{listErr: surveyapi.ErrNotConfigured}
	svc := NewService(store, client, &fakeProfiles{}, &sync.Mutex{}, nopLogger{})

	result, err := svc.Load(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Surveys)
	assert.Equal(t, fallbackSurveyorCount, result.Surveyors)
}

func TestCancel(t *testing.T) {
	store := bookingStore.NewStore()
	svc := NewService(store, &fakeSurveyClient{}, &fakeProfiles{}, &sync.Mutex{}, nopLogger{})

	key := domain.SlotKey{DateISO: testDate, SurveyorBookingID: 7, StartLabel: "10:00 AM"}
	store.Insert(&domain.Booking{
		Idx:               "SV-1",
		SurveyorBookingID: 7,
		DateISO:           testDate,
		StartLabel:        "10:00 AM",
	})

	require.NoError(t, svc.Cancel(key))
	assert.Equal(t, 0, store.Len())

	// Повторная отмена — мягкий отказ
	assert.ErrorIs(t, svc.Cancel(key), ErrBookingNotFound)
}

func TestCancel_CompletedBookingLocked(t *testing.T) {
	store := bookingStore.NewStore()
	svc := NewService(store, &fakeSurveyClient{}, &fakeProfiles{}, &sync.Mutex{}, nopLogger{})

	key := domain.SlotKey{DateISO: testDate, SurveyorBookingID: 7, StartLabel: "10:00 AM"}
	store.Insert(&domain.Booking{
		Idx:               "SV-1",
		SurveyorBookingID: 7,
		DateISO:           testDate,
		StartLabel:        "10:00 AM",
		IsCompleted:       true,
	})

	assert.ErrorIs(t, svc.Cancel(key), ErrAlreadyCompleted)
	assert.Equal(t, 1, store.Len())
}

func TestSurveyorByIDAndSiteLabel(t *testing.T) {
	store := bookingStore.NewStore()
	client := &fakeSurveyClient{pages: []*surveyapi.SurveyList{{
		TotalPages: 1,
		Results:    []surveyapi.Survey{survey("SV-1", 7, "ST001", "09:00-10:00")},
	}}}
	svc := NewService(store, client, &fakeProfiles{}, &sync.Mutex{}, nopLogger{})

	_, err := svc.Load(context.Background(), testDate)
	require.NoError(t, err)

	sv, err := svc.SurveyorByID(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), sv.BookingID)

	_, err = svc.SurveyorByID(999)
	assert.ErrorIs(t, err, ErrSurveyorNotFound)

	// Неизвестный объект подписывается собственным idx
	assert.Equal(t, "ST999", svc.SiteLabel("ST999"))
}
