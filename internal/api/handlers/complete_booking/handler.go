package complete_booking

import (
	"errors"
	"net/http"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
	completeBooking "github.com/aimanhzq/Survey-BookingService/internal/usecase/complete_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "для завершения обязательны замечания и фото"
	msgNotFound            = "бронирование не найдено"
	msgAlreadyCompleted    = "обследование уже завершено"
	msgUpstreamUnavailable = "сервис обследований недоступен"
)

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CompleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/complete - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var apiErr *surveyapi.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn("POST /bookings/complete - Upstream rejected update: surveyor=%d, status=%d, detail=%s",
				req.SurveyorBookingID, apiErr.StatusCode, apiErr.Detail)
			handlers.RespondError(w, apiErr.StatusCode, apiErr.Detail)
			return
		}

		switch {
		case errors.Is(err, completeBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/complete - Invalid input: surveyor=%d, error=%v",
				req.SurveyorBookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, completeBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/complete - Booking not found: surveyor=%d, date=%s, slot=%s",
				req.SurveyorBookingID, req.Date, req.StartTime)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, completeBooking.ErrAlreadyCompleted):
			h.logger.Warn("POST /bookings/complete - Already completed: surveyor=%d, date=%s, slot=%s",
				req.SurveyorBookingID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgAlreadyCompleted)

		case errors.Is(err, surveyapi.ErrNotConfigured):
			h.logger.Warn("POST /bookings/complete - Upstream not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /bookings/complete - Failed to complete booking: surveyor=%d, error=%v",
				req.SurveyorBookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/complete - Booking completed: idx=%s, surveyor=%d, date=%s, slot=%s",
		result.Idx, req.SurveyorBookingID, result.DateISO, result.StartLabel)
	handlers.RespondJSON(w, http.StatusOK, response)
}
