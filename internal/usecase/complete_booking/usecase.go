package complete_booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
)

// UseCase use case завершения обследования (Booked -> Completed, терминальное)
type UseCase struct {
	store        BookingStore
	surveyClient SurveyAPIClient
	lifecycleMu  *sync.Mutex
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	surveyClient SurveyAPIClient,
	lifecycleMu *sync.Mutex,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		surveyClient: surveyClient,
		lifecycleMu:  lifecycleMu,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет завершение обследования.
//
// Флаг завершения монотонный: однажды выставленный, он не снимается,
// а remarks и фото записываются ровно один раз. Upstream вызывается ДО
// локальной мутации — при ошибке upstream флаг остаётся false и никакое
// частично-завершенное состояние не наблюдаемо.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteBooking: surveyor=%d, date=%s, slot=%s",
		req.SurveyorBookingID, req.Date.Format(domain.DateFormat), req.StartLabel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteBooking: validation failed: %v", err)
		return nil, err
	}

	dateISO := req.Date.Format(domain.DateFormat)
	remarks := strings.TrimSpace(req.SurveyRemarks)

	uc.lifecycleMu.Lock()
	defer uc.lifecycleMu.Unlock()

	// 2. Бронирование должно существовать и быть незавершенным
	key := domain.SlotKey{
		DateISO:           dateISO,
		SurveyorBookingID: req.SurveyorBookingID,
		StartLabel:        req.StartLabel,
	}
	booking, err := uc.store.Get(key)
	if err != nil {
		uc.logger.Warn("CompleteBooking: no booking at (%s, %d, %s)",
			dateISO, req.SurveyorBookingID, req.StartLabel)
		return nil, ErrBookingNotFound
	}
	if !booking.CanBeCompleted() {
		uc.logger.Warn("CompleteBooking: booking idx=%s already completed, keeping original remarks/photo", booking.Idx)
		return nil, ErrAlreadyCompleted
	}

	// 3. Подтверждаем завершение в upstream до локальной мутации
	err = uc.surveyClient.Update(ctx, booking.Idx, &surveyapi.CompleteSurveyRequest{
		IsCompleted:        true,
		SurveyRemarks:      remarks,
		SurveyPhotoDataURL: req.SurveyPhotoRef,
	})
	if err != nil {
		if errors.Is(err, surveyapi.ErrUpstream) || errors.Is(err, surveyapi.ErrNotConfigured) {
			uc.logger.Warn("CompleteBooking: upstream rejected update for idx=%s: %v", booking.Idx, err)
			return nil, err
		}
		uc.logger.Error("CompleteBooking: upstream update failed for idx=%s: %v", booking.Idx, err)
		return nil, err
	}

	// 4. Фиксируем завершение локально
	now := uc.timeProvider.Now()
	booking.IsCompleted = true
	booking.SurveyRemarks = remarks
	booking.SurveyPhotoRef = req.SurveyPhotoRef
	booking.UpdatedAt = now
	uc.store.Insert(booking)

	uc.logger.Info("CompleteBooking: booking idx=%s marked completed", booking.Idx)

	return &Response{
		Idx:            booking.Idx,
		DateISO:        booking.DateISO,
		StartLabel:     booking.StartLabel,
		EndLabel:       booking.EndLabel,
		SurveyRemarks:  booking.SurveyRemarks,
		SurveyPhotoRef: booking.SurveyPhotoRef,
		CompletedAt:    now,
	}, nil
}
