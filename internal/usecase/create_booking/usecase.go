package create_booking

import (
	"context"
	"errors"
	"sync"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
)

// UseCase use case создания бронирования (Available -> Booked)
type UseCase struct {
	store        BookingStore
	deriver      StatusDeriver
	guard        CapacityGuard
	directory    SurveyorDirectory
	surveyClient SurveyAPIClient
	lifecycleMu  *sync.Mutex
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	deriver StatusDeriver,
	guard CapacityGuard,
	directory SurveyorDirectory,
	surveyClient SurveyAPIClient,
	lifecycleMu *sync.Mutex,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		deriver:      deriver,
		guard:        guard,
		directory:    directory,
		surveyClient: surveyClient,
		lifecycleMu:  lifecycleMu,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Порядок жёсткий: guard и вставка — единый check-then-act под мьютексом
// lifecycle-операций; upstream вызывается ДО локальной вставки
// (mutate-after-confirm) — при ошибке upstream хранилище не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: surveyor=%d, date=%s, slot=%s, site=%s, type=%s",
		req.SurveyorBookingID, req.Date.Format(domain.DateFormat), req.StartLabel, req.SiteIdx, req.SurveyType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	dateISO := req.Date.Format(domain.DateFormat)

	// 2. Получаем сюрвейера из каталога
	surveyor, err := uc.directory.SurveyorByID(req.SurveyorBookingID)
	if err != nil {
		uc.logger.Warn("CreateBooking: surveyor id=%d not found", req.SurveyorBookingID)
		return nil, ErrSurveyorNotFound
	}

	// 3. Сюрвейер без аккаунта не бронируется в принципе
	if !surveyor.IsBookable() {
		uc.logger.Warn("CreateBooking: surveyor id=%d has no booking account", req.SurveyorBookingID)
		return nil, ErrSurveyorNotBookable
	}

	// Дальше — check-then-act: проверки выполняются против текущего
	// состояния хранилища и остаются валидными до вставки
	uc.lifecycleMu.Lock()
	defer uc.lifecycleMu.Unlock()

	// 4. Дневной лимит бронирований
	if !uc.guard.CanBook(surveyor, dateISO) {
		uc.logger.Warn("CreateBooking: capacity exceeded for surveyor=%d, date=%s (max %d/day)",
			req.SurveyorBookingID, dateISO, domain.MaxBookingsPerDay)
		return nil, ErrCapacityExceeded
	}

	// 5. Целевой слот должен быть свободен
	if status := uc.deriver.DeriveStatus(surveyor, dateISO, req.StartLabel); status != domain.StatusAvailable {
		uc.logger.Warn("CreateBooking: slot %s is %s for surveyor=%d, date=%s",
			req.StartLabel, status, req.SurveyorBookingID, dateISO)
		return nil, ErrSlotNotAvailable
	}

	// 6. Создаем запись в upstream (система записи). При ошибке локальное
	// состояние не меняется — никакой optimistic insert до подтверждения
	wireSlot := timegrid.ToWire(req.StartLabel)
	created, err := uc.surveyClient.Create(ctx, &surveyapi.CreateSurveyRequest{
		Site:            req.SiteIdx,
		SurveyorBooking: req.SurveyorBookingID,
		TimeSlot:        wireSlot,
		SurveyType:      req.SurveyType,
		BDRemarks:       req.BDRemarks,
	})
	if err != nil {
		if errors.Is(err, surveyapi.ErrUpstream) || errors.Is(err, surveyapi.ErrNotConfigured) {
			uc.logger.Warn("CreateBooking: upstream rejected create: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: upstream create failed: %v", err)
		return nil, err
	}

	// 7. Вставляем бронирование с каноническим идентификатором upstream
	now := uc.timeProvider.Now()
	booking := &domain.Booking{
		Idx:               created.Idx,
		SiteIdx:           req.SiteIdx,
		SiteName:          uc.directory.SiteLabel(req.SiteIdx),
		SurveyorBookingID: req.SurveyorBookingID,
		DateISO:           dateISO,
		StartLabel:        req.StartLabel,
		EndLabel:          timegrid.NextHour(req.StartLabel),
		WireSlot:          wireSlot,
		SurveyType:        req.SurveyType,
		BDRemarks:         req.BDRemarks,
		IsCompleted:       false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	uc.store.Insert(booking)

	uc.logger.Info("CreateBooking: successfully created booking idx=%s at (%s, %d, %s)",
		booking.Idx, dateISO, req.SurveyorBookingID, req.StartLabel)

	return &Response{
		Idx:               booking.Idx,
		SiteIdx:           booking.SiteIdx,
		SiteName:          booking.SiteName,
		SurveyorBookingID: booking.SurveyorBookingID,
		DateISO:           booking.DateISO,
		StartLabel:        booking.StartLabel,
		EndLabel:          booking.EndLabel,
		WireSlot:          booking.WireSlot,
		SurveyType:        booking.SurveyType,
		BDRemarks:         booking.BDRemarks,
		CreatedAt:         booking.CreatedAt,
	}, nil
}
