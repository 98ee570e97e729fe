package scheduling_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

// AddDailySchedule нарезает промежуток start-end на слоты фиксированной
// длительности и дописывает их к расписанию врача на дату. Возвращает
// количество добавленных слотов.
func (s *SchedulingService) AddDailySchedule(ctx context.Context, doctorID, date, start, end string, durationMinutes int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctor, exists := s.doctors[doctorID]
	if !exists {
		return 0, fmt.Errorf("add daily schedule: %w", domain.ErrUnknownDoctor)
	}

	startMinutes, err := domain.ParseClock(start)
	if err != nil {
		return 0, fmt.Errorf("add daily schedule: %w", err)
	}
	endMinutes, err := domain.ParseClock(end)
	if err != nil {
		return 0, fmt.Errorf("add daily schedule: %w", err)
	}

	if startMinutes >= endMinutes {
		return 0, fmt.Errorf("add daily schedule: start %s is not before end %s: %w", start, end, domain.ErrInvalidTimeRange)
	}
	// Длительность должна быть положительной и помещаться в промежуток
	if durationMinutes <= 0 || durationMinutes > int(endMinutes-startMinutes) {
		return 0, fmt.Errorf("add daily schedule: duration %d does not fit range: %w", durationMinutes, domain.ErrInvalidTimeRange)
	}

	added := doctor.AddDailySchedule(date, startMinutes, endMinutes, durationMinutes)

	if s.cacheEnabled() {
		s.cachePort.InvalidateDate(ctx, date)
	}

	s.logger.Info("schedule.add", out.LogFields{
		"doctorId":   doctorID,
		"date":       date,
		"slotsAdded": added,
	})
	return added, nil
}

// GetDailySchedule возвращает метки слотов врача на дату в порядке генерации.
// Отсутствие расписания на дату отличается от пустого расписания и
// считается ошибкой.
func (s *SchedulingService) GetDailySchedule(ctx context.Context, doctorID, date string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctor, exists := s.doctors[doctorID]
	if !exists {
		return nil, fmt.Errorf("get daily schedule: %w", domain.ErrUnknownDoctor)
	}

	slots, exists := doctor.Schedule(date)
	if !exists {
		return nil, fmt.Errorf("get daily schedule for %s: %w", date, domain.ErrNoSchedule)
	}
	// Копия, чтобы вызывающий код не делил слайс с расписанием врача
	return append([]string(nil), slots...), nil
}

// FindSlots возвращает слоты на дату для всех врачей специальности,
// у которых на эту дату определено расписание. Врачи без расписания
// на дату в результат не попадают. Ключи - идентификаторы врачей.
func (s *SchedulingService) FindSlots(ctx context.Context, date, speciality string) map[string][]string {
	// Проверяем кэш только если он включен
	if s.cacheEnabled() {
		if slots, exists := s.cachePort.GetSlots(ctx, date, speciality); exists {
			s.logger.Debug("slots.find.cache.hit", out.LogFields{
				"date":       date,
				"speciality": speciality,
			})
			return slots
		}
		s.logger.Debug("slots.find.cache.miss", out.LogFields{
			"date":       date,
			"speciality": speciality,
		})
	}

	s.mu.RLock()
	docSlots := make(map[string][]string)
	for _, id := range s.sortedDoctorIDs() {
		doctor := s.doctors[id]
		if !doctor.Is(speciality) || !doctor.HasSchedule(date) {
			continue
		}
		slots, _ := doctor.Schedule(date)
		// Копируем, чтобы кэш и вызывающий код не делили один слайс с расписанием
		docSlots[id] = append([]string(nil), slots...)
	}
	s.mu.RUnlock()

	if s.cacheEnabled() {
		s.cachePort.StoreSlots(ctx, date, speciality, docSlots)
	}

	return docSlots
}
