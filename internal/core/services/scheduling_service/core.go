package scheduling_service

import (
	"sort"
	"sync"

	"github.com/suchimauz/medcenter-scheduling-service/internal/config"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

type SchedulingService struct {
	cfg       *config.Config
	cachePort out.CachePort
	eventPort out.EventPort
	logger    out.LoggerPort

	// Все коллекции изменяются только методами сервиса под одним мьютексом,
	// потому что запись, прием и завершение читают и пишут сразу несколько таблиц
	mu               sync.RWMutex
	specialities     map[string]struct{}
	doctors          map[string]*domain.Doctor
	appointments     map[string]*domain.Appointment
	appointmentOrder []string
	currentDate      string
}

func NewSchedulingService(
	cfg *config.Config,
	cachePort out.CachePort,
	eventPort out.EventPort,
	logger out.LoggerPort,
) *SchedulingService {
	return &SchedulingService{
		cfg:              cfg,
		cachePort:        cachePort,
		eventPort:        eventPort,
		logger:           logger.WithModule("SchedulingService"),
		specialities:     make(map[string]struct{}),
		doctors:          make(map[string]*domain.Doctor),
		appointments:     make(map[string]*domain.Appointment),
		appointmentOrder: make([]string, 0),
	}
}

// sortedDoctorIDs возвращает идентификаторы врачей по возрастанию.
// Вызывается только под мьютексом.
func (s *SchedulingService) sortedDoctorIDs() []string {
	ids := make([]string, 0, len(s.doctors))
	for id := range s.doctors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *SchedulingService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}

func (s *SchedulingService) appointmentEvent(app *domain.Appointment) out.AppointmentEvent {
	return out.AppointmentEvent{
		AppointmentID: app.ID,
		DoctorID:      app.DoctorID,
		PatientSSN:    app.SSN,
		Date:          app.Date,
		Slot:          app.Slot,
		Status:        app.Status,
	}
}
