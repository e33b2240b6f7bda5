package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	bookingStore "github.com/aimanhzq/Survey-BookingService/internal/infra/storage/booking"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
	scheduleService "github.com/aimanhzq/Survey-BookingService/internal/service/schedule"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeDirectory struct {
	surveyors map[int64]domain.Surveyor
}

func (d *fakeDirectory) SurveyorByID(bookingID int64) (*domain.Surveyor, error) {
	sv, ok := d.surveyors[bookingID]
	if !ok {
		return nil, fmt.Errorf("surveyor not found: id=%d", bookingID)
	}
	return &sv, nil
}

func (d *fakeDirectory) SiteLabel(siteIdx string) string {
	return "Site " + siteIdx
}

type fakeSurveyClient struct {
	createErr error
	calls     int
}

func (c *fakeSurveyClient) Create(ctx context.Context, req *surveyapi.CreateSurveyRequest) (*surveyapi.Survey, error) {
	c.calls++
	if c.createErr != nil {
		return nil, c.createErr
	}
	return &surveyapi.Survey{
		Idx:             fmt.Sprintf("SV-%d", c.calls),
		SurveyorBooking: req.SurveyorBooking,
		TimeSlot:        req.TimeSlot,
		SurveyType:      req.SurveyType,
		BDRemarks:       req.BDRemarks,
	}, nil
}

const testDate = "2026-08-28"

func newFixture(client *fakeSurveyClient) (*UseCase, *bookingStore.Store) {
	store := bookingStore.NewStore()
	schedule := scheduleService.NewService(store, nopLogger{})
	directory := &fakeDirectory{surveyors: map[int64]domain.Surveyor{
		7: {BookingID: 7, Name: "Amin"},
		0: {BookingID: 0, Name: "Placeholder"},
	}}

	uc := NewUseCase(store, schedule, schedule, directory, client, &sync.Mutex{}, nopLogger{})
	return uc, store
}

func validRequest() *Request {
	date, _ := time.Parse(domain.DateFormat, testDate)
	return &Request{
		SurveyorBookingID: 7,
		Date:              date,
		StartLabel:        "10:00 AM",
		SiteIdx:           "ST001",
		SurveyType:        "INITIAL",
		BDRemarks:         "first visit",
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	client := &fakeSurveyClient{}
	uc, store := newFixture(client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "SV-1", resp.Idx)
	assert.Equal(t, "10:00 AM", resp.StartLabel)
	assert.Equal(t, "11:00 AM", resp.EndLabel)
	assert.Equal(t, "10:00-11:00", resp.WireSlot)
	assert.Equal(t, "Site ST001", resp.SiteName)

	stored, err := store.Get(domain.SlotKey{
		DateISO:           testDate,
		SurveyorBookingID: 7,
		StartLabel:        "10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "SV-1", stored.Idx)
	assert.False(t, stored.IsCompleted)
}

func TestExecute_RejectsFourthBookingOfDay(t *testing.T) {
	client := &fakeSurveyClient{}
	uc, store := newFixture(client)

	for _, label := range []string{"9:00 AM", "10:00 AM", "11:00 AM"} {
		req := validRequest()
		req.StartLabel = label
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	req := validRequest()
	req.StartLabel = "1:00 PM"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Лимит не тронул ни upstream, ни хранилище
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, 3, store.Len())
}

func TestExecute_RejectsOccupiedSlot(t *testing.T) {
	client := &fakeSurveyClient{}
	uc, _ := newFixture(client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, client.calls)
}

func TestExecute_RecreateAfterCancelGetsNewIdentity(t *testing.T) {
	client := &fakeSurveyClient{}
	uc, store := newFixture(client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "SV-1", resp.Idx)

	key := domain.SlotKey{DateISO: testDate, SurveyorBookingID: 7, StartLabel: "10:00 AM"}
	require.NoError(t, store.Delete(key))

	// Отмененный идентификатор не воскресает
	resp, err = uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "SV-2", resp.Idx)
}

func TestExecute_UnknownSurveyor(t *testing.T) {
	uc, _ := newFixture(&fakeSurveyClient{})

	req := validRequest()
	req.SurveyorBookingID = 999
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSurveyorNotFound)
}

func TestExecute_SentinelSurveyorNotBookable(t *testing.T) {
	uc, _ := newFixture(&fakeSurveyClient{})

	req := validRequest()
	req.SurveyorBookingID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSurveyorNotBookable)
}

func TestExecute_UpstreamFailureLeavesStoreUntouched(t *testing.T) {
	apiErr := &surveyapi.APIError{StatusCode: 400, Detail: "Time slot already taken"}
	client := &fakeSurveyClient{createErr: apiErr}
	uc, store := newFixture(client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, surveyapi.ErrUpstream)
	assert.Equal(t, 0, store.Len())
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newFixture(&fakeSurveyClient{})

	testCases := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "unknown slot label", mutate: func(r *Request) { r.StartLabel = "5:00 PM" }},
		{name: "missing site", mutate: func(r *Request) { r.SiteIdx = "  " }},
		{name: "missing survey type", mutate: func(r *Request) { r.SurveyType = "" }},
		{name: "unknown survey type", mutate: func(r *Request) { r.SurveyType = "CASUAL" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
