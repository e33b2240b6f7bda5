package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
	"github.com/aimanhzq/Survey-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "бронирование не найдено"
	msgAlreadyCompleted   = "завершенное бронирование нельзя отменить"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	key, err := req.ToSlotKey()
	if err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Отмена локальная: upstream запись остаётся, слот освобождается
	if err := h.service.Cancel(key); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: surveyor=%d, date=%s, slot=%s",
				key.SurveyorBookingID, key.DateISO, key.StartLabel)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyCompleted):
			h.logger.Warn("POST /bookings/cancel - Booking already completed: surveyor=%d, date=%s, slot=%s",
				key.SurveyorBookingID, key.DateISO, key.StartLabel)
			handlers.RespondConflict(w, msgAlreadyCompleted)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: surveyor=%d, error=%v",
				key.SurveyorBookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: surveyor=%d, date=%s, slot=%s",
		key.SurveyorBookingID, key.DateISO, key.StartLabel)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
