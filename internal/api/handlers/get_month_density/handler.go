package get_month_density

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
)

const (
	msgInvalidYear  = "некорректный параметр year"
	msgInvalidMonth = "некорректный параметр month, ожидается 1-12"
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

// Handle GET /api/v1/schedule/month?year=2026&month=8
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		h.logger.Warn("GET /schedule/month - Invalid year %q", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /schedule/month - Invalid month %q", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	surveyors := h.directory.Surveyors()
	density := h.aggregation.MonthDensity(surveyors, year, time.Month(month))

	h.logger.Info("GET /schedule/month - Density built: year=%d, month=%d, days=%d", year, month, len(density))
	handlers.RespondJSON(w, http.StatusOK, BuildResponse(year, month, density))
}
