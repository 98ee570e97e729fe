package scheduling_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

// BookAppointment записывает пациента в существующий слот расписания врача
// и возвращает идентификатор новой записи. Слот не резервируется: несколько
// записей в один и тот же слот допустимы, контроль пересечений остается
// за потребителем событий.
func (s *SchedulingService) BookAppointment(ctx context.Context, ssn, name, surname, doctorID, date, slot string) (string, error) {
	s.mu.Lock()

	doctor, exists := s.doctors[doctorID]
	if !exists {
		s.mu.Unlock()
		return "", fmt.Errorf("book appointment: %w", domain.ErrUnknownDoctor)
	}
	slots, hasSchedule := doctor.Schedule(date)
	if !hasSchedule {
		s.mu.Unlock()
		return "", fmt.Errorf("book appointment on %s: %w", date, domain.ErrNoSchedule)
	}
	slotExists := false
	for _, label := range slots {
		if label == slot {
			slotExists = true
			break
		}
	}
	if !slotExists {
		s.mu.Unlock()
		return "", fmt.Errorf("book appointment into %q: %w", slot, domain.ErrSlotNotFound)
	}

	appointment := domain.NewAppointment(ssn, name, surname, doctorID, date, slot)
	s.appointments[appointment.ID] = appointment
	s.appointmentOrder = append(s.appointmentOrder, appointment.ID)
	event := s.appointmentEvent(appointment)
	s.mu.Unlock()

	s.logger.Info("booking.create", out.LogFields{
		"appointmentId": appointment.ID,
		"doctorId":      doctorID,
		"date":          date,
		"slot":          slot,
	})

	if s.eventPort != nil {
		if err := s.eventPort.AppointmentBooked(ctx, event); err != nil {
			// Запись уже сохранена, потерянное событие не откатывает ее
			s.logger.Error("booking.event.publish_failed", out.LogFields{
				"appointmentId": appointment.ID,
				"error":         err.Error(),
			})
		}
	}

	return appointment.ID, nil
}

func (s *SchedulingService) GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointment, exists := s.appointments[appointmentID]
	if !exists {
		return nil, fmt.Errorf("get appointment %s: %w", appointmentID, domain.ErrUnknownAppointment)
	}
	return appointment, nil
}

// ListAppointments возвращает записи врача на дату в формате "HH:MM=SSN",
// в порядке создания записей.
func (s *SchedulingService) ListAppointments(ctx context.Context, doctorID, date string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]string, 0)
	for _, id := range s.appointmentOrder {
		appointment := s.appointments[id]
		if appointment.DoctorID == doctorID && appointment.Date == date {
			entries = append(entries, appointment.String())
		}
	}
	return entries
}
