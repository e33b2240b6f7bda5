package booking

import (
	"sync"

	"github.com/aimanhzq/Survey-BookingService/internal/domain"
)

// Store хранилище бронирований в памяти процесса.
//
// Единственный источник правды для всех производных представлений (статусы
// слотов, недельная загрузка, месячная плотность). Система записи — upstream
// survey API; Store живёт только в рамках работающего инстанса и наполняется
// заново из upstream при старте (см. service/bookings.Load).
//
// Ключ — натуральный ключ бронирования (дата, сюрвейер, слот). Insert по
// занятому ключу перезаписывает значение: этим намеренно пользуется
// reschedule-as-move, но lifecycle-операции обязаны проходить через свои
// guarded-проверки, а не звать Insert напрямую.
type Store struct {
	mu       sync.RWMutex
	bookings map[domain.SlotKey]domain.Booking
}

// NewStore создает пустое хранилище бронирований
func NewStore() *Store {
	return &Store{
		bookings: make(map[domain.SlotKey]domain.Booking),
	}
}

// Insert сохраняет бронирование по его натуральному ключу.
// Существующее значение по тому же ключу перезаписывается.
func (s *Store) Insert(b *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.Key()] = *b
}

// Get возвращает копию бронирования по ключу
func (s *Store) Get(key domain.SlotKey) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[key]
	if !ok {
		return nil, ErrBookingNotFound
	}
	// Возвращаем копию: мутации снаружи не должны менять состояние хранилища
	out := b
	return &out, nil
}

// Delete удаляет бронирование по ключу
func (s *Store) Delete(key domain.SlotKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[key]; !ok {
		return ErrBookingNotFound
	}
	delete(s.bookings, key)
	return nil
}

// List возвращает снимок всех бронирований (для агрегаций)
func (s *Store) List() []*domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		copied := b
		out = append(out, &copied)
	}
	return out
}

// CountForDay возвращает число бронирований сюрвейера на дату
// (booked и completed считаются одинаково)
func (s *Store) CountForDay(surveyorBookingID int64, dateISO string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key := range s.bookings {
		if key.SurveyorBookingID == surveyorBookingID && key.DateISO == dateISO {
			count++
		}
	}
	return count
}

// Len возвращает общее число бронирований в хранилище
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
