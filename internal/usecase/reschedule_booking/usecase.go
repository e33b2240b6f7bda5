package reschedule_booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
)

// UseCase use case переноса бронирования (Booked -> Booked на новом ключе,
// либо Booked -> Available, если свободного слота в дне нет)
type UseCase struct {
	store        BookingStore
	deriver      StatusDeriver
	directory    SurveyorDirectory
	lifecycleMu  *sync.Mutex
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	deriver StatusDeriver,
	directory SurveyorDirectory,
	lifecycleMu *sync.Mutex,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		deriver:      deriver,
		directory:    directory,
		lifecycleMu:  lifecycleMu,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет перенос бронирования.
//
// Алгоритм: сканируем слоты дня вперед от текущего (с переходом через
// начало последовательности, исключая сам текущий слот) и берем первый
// со статусом available для того же сюрвейера и даты. Перенос — это move:
// удаление по старому ключу и вставка по новому (две операции под общим
// мьютексом lifecycle; вне его пара не атомарна). Если свободного слота
// нет — перенос деградирует до отмены. Перенос только внутри дня;
// upstream при переносе не вызывается (см. DESIGN.md).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: surveyor=%d, date=%s, slot=%s",
		req.SurveyorBookingID, req.Date.Format(domain.DateFormat), req.StartLabel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	dateISO := req.Date.Format(domain.DateFormat)

	// 2. Получаем сюрвейера из каталога
	surveyor, err := uc.directory.SurveyorByID(req.SurveyorBookingID)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: surveyor id=%d not found", req.SurveyorBookingID)
		return nil, ErrSurveyorNotFound
	}

	uc.lifecycleMu.Lock()
	defer uc.lifecycleMu.Unlock()

	// 3. Бронирование должно существовать и быть незавершенным
	oldKey := domain.SlotKey{
		DateISO:           dateISO,
		SurveyorBookingID: req.SurveyorBookingID,
		StartLabel:        req.StartLabel,
	}
	booking, err := uc.store.Get(oldKey)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: no booking at (%s, %d, %s)",
			dateISO, req.SurveyorBookingID, req.StartLabel)
		return nil, ErrBookingNotFound
	}
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking idx=%s is completed and locked", booking.Idx)
		return nil, ErrAlreadyCompleted
	}

	// 4. Ищем первый свободный слот в порядке сканирования
	for _, candidate := range timegrid.ScanFrom(req.StartLabel) {
		if uc.deriver.DeriveStatus(surveyor, dateISO, candidate) != domain.StatusAvailable {
			continue
		}

		// Move: старый ключ освобождается ровно тогда, когда занимается новый
		if err := uc.store.Delete(oldKey); err != nil {
			uc.logger.Error("RescheduleBooking: store delete failed: %v", err)
			return nil, fmt.Errorf("%w: store delete: %v", ErrInternal, err)
		}

		booking.StartLabel = candidate
		booking.EndLabel = timegrid.NextHour(candidate)
		booking.WireSlot = timegrid.ToWire(candidate)
		booking.UpdatedAt = uc.timeProvider.Now()
		uc.store.Insert(booking)

		uc.logger.Info("RescheduleBooking: moved booking idx=%s from %s to %s (date=%s, surveyor=%d)",
			booking.Idx, req.StartLabel, candidate, dateISO, req.SurveyorBookingID)

		return &Response{
			Outcome:       OutcomeMoved,
			Idx:           booking.Idx,
			DateISO:       dateISO,
			OldStartLabel: req.StartLabel,
			NewStartLabel: candidate,
			NewEndLabel:   booking.EndLabel,
		}, nil
	}

	// 5. Свободных слотов нет — деградация до отмены
	if err := uc.store.Delete(oldKey); err != nil {
		uc.logger.Error("RescheduleBooking: store delete failed: %v", err)
		return nil, fmt.Errorf("%w: store delete: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleBooking: no free slot on %s for surveyor=%d, booking idx=%s cancelled",
		dateISO, req.SurveyorBookingID, booking.Idx)

	return &Response{
		Outcome:       OutcomeCancelled,
		Idx:           booking.Idx,
		DateISO:       dateISO,
		OldStartLabel: req.StartLabel,
	}, nil
}
