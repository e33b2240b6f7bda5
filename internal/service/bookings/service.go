package bookings

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	"github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
	"github.com/aimanhzq/Survey-BookingService/internal/service/bookings/models"
	"github.com/aimanhzq/Survey-BookingService/internal/timegrid"
	"github.com/aimanhzq/Survey-BookingService/pkg/ptr"
)

// fallbackSurveyorCount число sentinel-сюрвейеров, когда upstream
// не вернул ни одной записи (вся сетка рисуется как unavailable)
const fallbackSurveyorCount = 10

// maxHydrationPages предохранитель от бесконечной пагинации upstream
const maxHydrationPages = 50

// Service управляет жизненным циклом локального состояния бронирований:
// гидратация хранилища из upstream при старте, каталоги сюрвейеров и
// объектов, локальная отмена.
type Service struct {
	store         BookingStore
	surveyClient  SurveyAPIClient
	profileClient ProfileDirectory
	lifecycleMu   *sync.Mutex // общий мьютекс check-then-act всех lifecycle-операций
	logger        Logger

	mu        sync.RWMutex
	surveyors []domain.Surveyor
	sites     []models.SiteOption
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	store BookingStore,
	surveyClient SurveyAPIClient,
	profileClient ProfileDirectory,
	lifecycleMu *sync.Mutex,
	logger Logger,
) *Service {
	return &Service{
		store:         store,
		surveyClient:  surveyClient,
		profileClient: profileClient,
		lifecycleMu:   lifecycleMu,
		logger:        logger,
	}
}

// Load гидратирует хранилище из upstream survey API.
//
// Upstream-модель не содержит даты, поэтому все загруженные обследования
// привязываются к просматриваемому дню (dateISO). Из списка выводятся:
// каталог сюрвейеров (уникальные surveyor_booking, отсортированные) и
// каталог объектов (дедупликация site idx).
func (s *Service) Load(ctx context.Context, dateISO string) (*models.LoadResult, error) {
	s.logger.Info("Load: hydrating booking store for date=%s", dateISO)

	// Недоступный upstream деградирует до пустого списка: сетка рисуется
	// из sentinel-сюрвейеров, сервис остаётся живым
	surveys, err := s.fetchAllPages(ctx)
	if err != nil {
		s.logger.Error("Load: failed to fetch surveys from upstream, starting with empty grid: %v", err)
		surveys = nil
	}

	// Каталог сюрвейеров: уникальные валидные booking id, по возрастанию
	idSet := make(map[int64]struct{})
	for _, sv := range surveys {
		if sv.SurveyorBooking > 0 {
			idSet[sv.SurveyorBooking] = struct{}{}
		}
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	surveyors := s.buildSurveyors(ctx, ids)

	// Каталог объектов: дедупликация site idx из загруженного списка
	siteSet := make(map[string]string)
	for _, sv := range surveys {
		if sv.Site.Idx == "" {
			continue
		}
		if _, ok := siteSet[sv.Site.Idx]; !ok {
			siteSet[sv.Site.Idx] = sv.Site.Label()
		}
	}
	sites := make([]models.SiteOption, 0, len(siteSet))
	for idx, label := range siteSet {
		sites = append(sites, models.SiteOption{Idx: idx, Label: label})
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].Idx < sites[j].Idx })

	// Сидируем хранилище загруженными обследованиями
	for _, sv := range surveys {
		if sv.SurveyorBooking <= 0 {
			continue
		}
		b := &domain.Booking{
			Idx:               sv.Idx,
			SiteIdx:           sv.Site.Idx,
			SiteName:          sv.Site.Label(),
			SurveyorBookingID: sv.SurveyorBooking,
			DateISO:           dateISO,
			StartLabel:        timegrid.WireStart(sv.TimeSlot),
			EndLabel:          timegrid.WireEnd(sv.TimeSlot),
			WireSlot:          sv.TimeSlot,
			SurveyType:        sv.SurveyType,
			BDRemarks:         sv.BDRemarks,
			IsCompleted:       sv.IsCompleted,
		}
		b.SurveyRemarks = ptr.Value(sv.SurveyRemarks)
		b.SurveyPhotoRef = ptr.Value(sv.SurveyPhotoDataURL)
		s.store.Insert(b)
	}

	s.mu.Lock()
	s.surveyors = surveyors
	s.sites = sites
	s.mu.Unlock()

	s.logger.Info("Load: hydrated %d surveys, %d surveyors, %d sites",
		len(surveys), len(surveyors), len(sites))

	return &models.LoadResult{
		Surveys:   s.store.Len(),
		Surveyors: len(surveyors),
		Sites:     len(sites),
	}, nil
}

// Cancel отменяет бронирование по натуральному ключу.
//
// Отмена локальная: upstream-запись не удаляется (см. DESIGN.md).
// Отмена завершенного или отсутствующего бронирования — мягкий отказ
// без изменения состояния, не фатальная ошибка.
func (s *Service) Cancel(key domain.SlotKey) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	b, err := s.store.Get(key)
	if err != nil {
		s.logger.Warn("Cancel: booking not found: date=%s, surveyor=%d, slot=%s",
			key.DateISO, key.SurveyorBookingID, key.StartLabel)
		return ErrBookingNotFound
	}

	if !b.CanBeCancelled() {
		s.logger.Warn("Cancel: booking idx=%s is completed and locked", b.Idx)
		return ErrAlreadyCompleted
	}

	if err := s.store.Delete(key); err != nil {
		return fmt.Errorf("%w: Cancel - store delete: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking idx=%s, surveyor=%d, date=%s, slot=%s",
		b.Idx, key.SurveyorBookingID, key.DateISO, key.StartLabel)
	return nil
}

// Surveyors возвращает каталог сюрвейеров (копию)
func (s *Service) Surveyors() []domain.Surveyor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Surveyor, len(s.surveyors))
	copy(out, s.surveyors)
	return out
}

// SurveyorByID возвращает сюрвейера по booking id
func (s *Service) SurveyorByID(bookingID int64) (*domain.Surveyor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.surveyors {
		if s.surveyors[i].BookingID == bookingID {
			sv := s.surveyors[i]
			return &sv, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrSurveyorNotFound, bookingID)
}

// Sites возвращает каталог объектов (копию)
func (s *Service) Sites() []models.SiteOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SiteOption, len(s.sites))
	copy(out, s.sites)
	return out
}

// SiteLabel возвращает подпись объекта по idx (или сам idx, если объекта
// нет в каталоге — каталог собирается только из уже виденных записей)
func (s *Service) SiteLabel(siteIdx string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, site := range s.sites {
		if site.Idx == siteIdx {
			return site.Label
		}
	}
	return siteIdx
}

// fetchAllPages загружает все страницы списка обследований
func (s *Service) fetchAllPages(ctx context.Context) ([]surveyapi.Survey, error) {
	var out []surveyapi.Survey

	page := 1
	for {
		list, err := s.surveyClient.List(ctx, page)
		if err != nil {
			return nil, err
		}
		out = append(out, list.Results...)

		if list.TotalPages <= page || page >= maxHydrationPages {
			break
		}
		page++
	}

	return out, nil
}

// buildSurveyors собирает каталог сюрвейеров: реальные booking id
// обогащаются профилями из каталога; пустой список заменяется
// sentinel-сюрвейерами (id=0), для которых каждый слот unavailable
func (s *Service) buildSurveyors(ctx context.Context, ids []int64) []domain.Surveyor {
	count := len(ids)
	if count == 0 {
		count = fallbackSurveyorCount
	}

	profiles := s.profileClient.FetchProfiles(ctx, count)

	out := make([]domain.Surveyor, count)
	for i := range out {
		var id int64
		if i < len(ids) {
			id = ids[i]
		}

		name := fmt.Sprintf("Surveyor #%d", i+1)
		avatar := ""
		if i < len(profiles) {
			if full := profiles[i].FullName(); full != "" {
				name = full
			}
			avatar = profiles[i].Picture.Medium
		}

		out[i] = domain.Surveyor{
			BookingID: id,
			Name:      name,
			Region:    domain.MalaysiaRegions[rand.Intn(len(domain.MalaysiaRegions))],
			State:     domain.MalaysiaStates[rand.Intn(len(domain.MalaysiaStates))],
			AvatarURL: avatar,
		}
	}
	return out
}
