package get_week_usage

import (
	"net/http"
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/service/aggregation"
)

const (
	msgMissingStart = "отсутствует параметр start"
	msgInvalidStart = "некорректный формат даты начала недели, ожидается YYYY-MM-DD"
)

type Handler struct {
	aggregation AggregationService
	directory   SurveyorDirectory
	logger      Logger
}

func NewHandler(aggregationSvc AggregationService, directory SurveyorDirectory, logger Logger) *Handler {
	return &Handler{
		aggregation: aggregationSvc,
		directory:   directory,
		logger:      logger,
	}
}

// Handle GET /api/v1/schedule/week?start=YYYY-MM-DD
// start может указывать на любой день недели: она нормализуется к понедельнику.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	if startStr == "" {
		h.logger.Warn("GET /schedule/week - Missing start parameter")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /schedule/week - Invalid start %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	weekStart := aggregation.StartOfWeek(start)
	surveyors := h.directory.Surveyors()
	usage := h.aggregation.WeekUsage(surveyors, weekStart)

	h.logger.Info("GET /schedule/week - Usage built: week_start=%s, surveyors=%d",
		weekStart.Format(domain.DateFormat), len(surveyors))
	handlers.RespondJSON(w, http.StatusOK, BuildResponse(weekStart, surveyors, usage))
}
