package scheduling_service

import (
	"context"
	"fmt"
	"sort"

	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

// AddSpecialities добавляет специальности в справочник. Дубликаты игнорируются.
func (s *SchedulingService) AddSpecialities(ctx context.Context, names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, name := range names {
		if _, exists := s.specialities[name]; !exists {
			s.specialities[name] = struct{}{}
			added++
		}
	}

	s.logger.Info("registry.specialities.add", out.LogFields{
		"requested": len(names),
		"added":     added,
		"total":     len(s.specialities),
	})
}

func (s *SchedulingService) GetSpecialities(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.specialities))
	for name := range s.specialities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddDoctor регистрирует врача. Специальность должна быть в справочнике.
// Повторная регистрация с тем же идентификатором перезаписывает старую запись.
func (s *SchedulingService) AddDoctor(ctx context.Context, id, name, surname, speciality string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.specialities[speciality]; !exists {
		s.logger.Warn("registry.doctor.add.invalid_speciality", out.LogFields{
			"doctorId":   id,
			"speciality": speciality,
		})
		return fmt.Errorf("add doctor %s: %w", id, domain.ErrInvalidSpeciality)
	}

	if _, exists := s.doctors[id]; exists {
		s.logger.Warn("registry.doctor.add.overwrite", out.LogFields{
			"doctorId": id,
		})
	}
	s.doctors[id] = domain.NewDoctor(id, name, surname, speciality)

	// Состав врачей влияет на результаты поиска слотов
	if s.cacheEnabled() {
		s.cachePort.Purge(ctx)
	}

	s.logger.Info("registry.doctor.add", out.LogFields{
		"doctorId":   id,
		"speciality": speciality,
	})
	return nil
}

func (s *SchedulingService) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctor, exists := s.doctors[id]
	if !exists {
		return nil, fmt.Errorf("get doctor %s: %w", id, domain.ErrUnknownDoctor)
	}
	return doctor, nil
}

// GetSpecialists возвращает имена врачей заданной специальности,
// в порядке возрастания идентификаторов. Неизвестная специальность
// не ошибка, просто пустой результат.
func (s *SchedulingService) GetSpecialists(ctx context.Context, speciality string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0)
	for _, id := range s.sortedDoctorIDs() {
		if s.doctors[id].Is(speciality) {
			names = append(names, s.doctors[id].Name)
		}
	}
	return names
}
