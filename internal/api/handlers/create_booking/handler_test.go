package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
	createBooking "github.com/aimanhzq/Survey-BookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"surveyorBookingId": int64(7),
		"date":              "2026-08-28",
		"startTime":         "10:00 AM",
		"siteIdx":           "ST001",
		"surveyType":        "INITIAL",
		"bdRemarks":         "first visit",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		Idx:               "SV-1",
		SiteIdx:           "ST001",
		SiteName:          "ST0001 Taman Melati",
		SurveyorBookingID: 7,
		DateISO:           "2026-08-28",
		StartLabel:        "10:00 AM",
		EndLabel:          "11:00 AM",
		WireSlot:          "10:00-11:00",
		SurveyType:        "INITIAL",
		CreatedAt:         time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SV-1", resp.Idx)
	assert.Equal(t, "10:00 AM", resp.StartTime)
	assert.Equal(t, "10:00-11:00", resp.TimeSlot)

	// Дата разобрана и передана в use case
	require.NotNil(t, uc.got)
	assert.Equal(t, "2026-08-28", uc.got.Date.Format("2006-01-02"))
}

func TestHandle_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "surveyor not found", err: createBooking.ErrSurveyorNotFound, wantStatus: http.StatusNotFound},
		{name: "not bookable", err: createBooking.ErrSurveyorNotBookable, wantStatus: http.StatusBadRequest},
		{name: "capacity exceeded", err: createBooking.ErrCapacityExceeded, wantStatus: http.StatusConflict},
		{name: "slot taken", err: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "upstream not configured", err: surveyapi.ErrNotConfigured, wantStatus: http.StatusServiceUnavailable},
		{name: "unexpected error", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tc.err}, validBody())
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandle_UpstreamErrorForwarded(t *testing.T) {
	uc := &stubUseCase{err: &surveyapi.APIError{StatusCode: 400, Detail: "Time slot already taken"}}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Time slot already taken")
}

func TestHandle_BadDate(t *testing.T) {
	body := validBody()
	body["date"] = "28/08/2026"

	rec := doRequest(t, &stubUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()

	NewHandler(&stubUseCase{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
