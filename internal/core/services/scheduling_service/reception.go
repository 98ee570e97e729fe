package scheduling_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

// SetCurrentDate задает текущий день работы регистратуры и возвращает
// количество записей на этот день независимо от их статуса.
func (s *SchedulingService) SetCurrentDate(ctx context.Context, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentDate = date

	count := 0
	for _, appointment := range s.appointments {
		if appointment.Date == date {
			count++
		}
	}

	s.logger.Info("reception.current_date.set", out.LogFields{
		"date":         date,
		"appointments": count,
	})
	return count
}

// AcceptPatient отмечает приход пациента: первая по порядку создания запись
// этого пациента на текущий день переходит в статус accepted. Уже завершенная
// запись статус не меняет и в очередь не возвращается. Возвращает
// идентификатор принятой записи.
func (s *SchedulingService) AcceptPatient(ctx context.Context, ssn string) (string, error) {
	s.mu.Lock()

	if s.currentDate == "" {
		s.mu.Unlock()
		return "", fmt.Errorf("accept patient: %w", domain.ErrCurrentDateNotSet)
	}

	var accepted *domain.Appointment
	for _, id := range s.appointmentOrder {
		appointment := s.appointments[id]
		if appointment.SSN == ssn && appointment.Date == s.currentDate {
			accepted = appointment
			break
		}
	}
	if accepted == nil {
		s.mu.Unlock()
		s.logger.Warn("reception.accept.no_match", out.LogFields{
			"ssn":  ssn,
			"date": s.currentDate,
		})
		return "", fmt.Errorf("accept patient %s: %w", ssn, domain.ErrNoPatientAppointment)
	}

	transitioned := accepted.Accept()
	event := s.appointmentEvent(accepted)
	s.mu.Unlock()

	s.logger.Info("reception.accept", out.LogFields{
		"appointmentId": accepted.ID,
		"ssn":           ssn,
	})

	if transitioned && s.eventPort != nil {
		if err := s.eventPort.AppointmentAccepted(ctx, event); err != nil {
			s.logger.Error("reception.accept.event.publish_failed", out.LogFields{
				"appointmentId": accepted.ID,
				"error":         err.Error(),
			})
		}
	}

	return accepted.ID, nil
}

// NextAppointment возвращает идентификатор первой по порядку создания записи
// врача, которая принята и еще не завершена. Пустая строка - очередь пуста,
// это не ошибка.
func (s *SchedulingService) NextAppointment(ctx context.Context, doctorID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.appointmentOrder {
		appointment := s.appointments[id]
		if appointment.DoctorID == doctorID && appointment.Status == domain.AppointmentStatusAccepted {
			return appointment.ID, nil
		}
	}
	return "", nil
}

// CompleteAppointment завершает прием. Проверяются врач, запись и их
// соответствие друг другу; предварительный прием пациента регистратурой
// не требуется - запись переходит в completed из любого статуса.
func (s *SchedulingService) CompleteAppointment(ctx context.Context, doctorID, appointmentID string) error {
	s.mu.Lock()

	if _, exists := s.doctors[doctorID]; !exists {
		s.mu.Unlock()
		return fmt.Errorf("complete appointment: %w", domain.ErrUnknownDoctor)
	}
	appointment, exists := s.appointments[appointmentID]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("complete appointment %s: %w", appointmentID, domain.ErrUnknownAppointment)
	}
	if appointment.DoctorID != doctorID {
		s.mu.Unlock()
		return fmt.Errorf("complete appointment %s: %w", appointmentID, domain.ErrDoctorMismatch)
	}

	appointment.Complete()
	event := s.appointmentEvent(appointment)
	s.mu.Unlock()

	s.logger.Info("reception.complete", out.LogFields{
		"appointmentId": appointmentID,
		"doctorId":      doctorID,
	})

	if s.eventPort != nil {
		if err := s.eventPort.AppointmentCompleted(ctx, event); err != nil {
			s.logger.Error("reception.complete.event.publish_failed", out.LogFields{
				"appointmentId": appointmentID,
				"error":         err.Error(),
			})
		}
	}

	return nil
}
