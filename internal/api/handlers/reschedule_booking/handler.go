package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
	rescheduleBooking "github.com/aimanhzq/Survey-BookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные переноса"
	msgSurveyorNotFound   = "сюрвейер не найден"
	msgNotFound           = "бронирование не найдено"
	msgAlreadyCompleted   = "завершенное бронирование нельзя перенести"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/reschedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/reschedule - Invalid input: surveyor=%d, error=%v",
				req.SurveyorBookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleBooking.ErrSurveyorNotFound):
			h.logger.Warn("POST /bookings/reschedule - Surveyor not found: surveyor=%d", req.SurveyorBookingID)
			handlers.RespondNotFound(w, msgSurveyorNotFound)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/reschedule - Booking not found: surveyor=%d, date=%s, slot=%s",
				req.SurveyorBookingID, req.Date, req.StartTime)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAlreadyCompleted):
			h.logger.Warn("POST /bookings/reschedule - Booking already completed: surveyor=%d, date=%s, slot=%s",
				req.SurveyorBookingID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgAlreadyCompleted)

		default:
			h.logger.Error("POST /bookings/reschedule - Failed to reschedule booking: surveyor=%d, error=%v",
				req.SurveyorBookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/reschedule - Outcome=%s: idx=%s, surveyor=%d, date=%s, old=%s, new=%s",
		result.Outcome, result.Idx, req.SurveyorBookingID, result.DateISO, result.OldStartLabel, result.NewStartLabel)
	handlers.RespondJSON(w, http.StatusOK, response)
}
