package scheduling_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
)

// ShowRate - доля пришедших пациентов среди всех записей врача на дату.
// Запись считается пришедшей, если она принята регистратурой или уже
// завершена. Без записей на дату доля не определена.
func (s *SchedulingService) ShowRate(ctx context.Context, doctorID, date string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.doctors[doctorID]; !exists {
		return 0, fmt.Errorf("show rate: %w", domain.ErrUnknownDoctor)
	}

	total := 0
	showed := 0
	for _, appointment := range s.appointments {
		if appointment.DoctorID != doctorID || appointment.Date != date {
			continue
		}
		total++
		if appointment.Showed() {
			showed++
		}
	}

	if total == 0 {
		return 0, fmt.Errorf("show rate for %s on %s: %w", doctorID, date, domain.ErrNoAppointments)
	}
	return float64(showed) / float64(total), nil
}

// ScheduleCompleteness - для каждого врача отношение всех его записей
// ко всем сгенерированным слотам за все даты. Врач без единого слота
// получает 0: записи без слота невозможны, числитель заведомо нулевой.
func (s *SchedulingService) ScheduleCompleteness(ctx context.Context) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDoctor := make(map[string]int, len(s.doctors))
	for _, appointment := range s.appointments {
		byDoctor[appointment.DoctorID]++
	}

	completeness := make(map[string]float64, len(s.doctors))
	for _, id := range s.sortedDoctorIDs() {
		totalSlots := s.doctors[id].TotalSlots()
		if totalSlots == 0 {
			completeness[id] = 0
			continue
		}
		completeness[id] = float64(byDoctor[id]) / float64(totalSlots)
	}
	return completeness
}
