package create_booking

import (
	"errors"
	"net/http"

	"github.com/aimanhzq/Survey-BookingService/internal/api/handlers"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
	createBooking "github.com/aimanhzq/Survey-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные данные бронирования"
	msgSurveyorNotFound    = "сюрвейер не найден"
	msgSurveyorNotBookable = "у сюрвейера нет аккаунта для бронирования"
	msgCapacityExceeded    = "достигнут дневной лимит бронирований сюрвейера"
	msgSlotNotAvailable    = "выбранный временной слот недоступен"
	msgUpstreamUnavailable = "сервис обследований недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Структурированная ошибка upstream пробрасывается клиенту как есть
		var apiErr *surveyapi.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn("POST /bookings - Upstream rejected create: surveyor=%d, status=%d, detail=%s",
				req.SurveyorBookingID, apiErr.StatusCode, apiErr.Detail)
			handlers.RespondError(w, apiErr.StatusCode, apiErr.Detail)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: surveyor=%d, error=%v", req.SurveyorBookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSurveyorNotFound):
			h.logger.Warn("POST /bookings - Surveyor not found: surveyor=%d", req.SurveyorBookingID)
			handlers.RespondNotFound(w, msgSurveyorNotFound)

		case errors.Is(err, createBooking.ErrSurveyorNotBookable):
			h.logger.Warn("POST /bookings - Surveyor not bookable: surveyor=%d", req.SurveyorBookingID)
			handlers.RespondBadRequest(w, msgSurveyorNotBookable)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Daily capacity exceeded: surveyor=%d, date=%s",
				req.SurveyorBookingID, req.Date)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: surveyor=%d, date=%s, slot=%s",
				req.SurveyorBookingID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, surveyapi.ErrNotConfigured):
			h.logger.Warn("POST /bookings - Upstream not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: surveyor=%d, error=%v",
				req.SurveyorBookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: idx=%s, surveyor=%d, date=%s, slot=%s",
		result.Idx, result.SurveyorBookingID, result.DateISO, result.StartLabel)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
