package get_day_schedule

import (
	"net/http"
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

const (
	msgMissingDate = "отсутствует параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	schedule  ScheduleService
	directory SurveyorDirectory
	logger    Logger
}

func NewHandler(schedule ScheduleService, directory SurveyorDirectory, logger Logger) *Handler {
	return &Handler{
		schedule:  schedule,
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/schedule/day?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/day - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/day - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	dateISO := date.Format(domain.DateFormat)
	rows := h.schedule.DayRows(h.directory.Surveyors(), dateISO)

	h.logger.Info("GET /schedule/day - Schedule built: date=%s, surveyors=%d", dateISO, len(rows))
	handlers.RespondJSON(w, http.StatusOK, FromServiceRows(dateISO, rows))
}
