package in

import (
	"context"

	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
)

type SchedulingUseCase interface {
	// Справочник специальностей и врачей
	AddSpecialities(ctx context.Context, names ...string)
	GetSpecialities(ctx context.Context) []string
	AddDoctor(ctx context.Context, id, name, surname, speciality string) error
	GetDoctor(ctx context.Context, id string) (*domain.Doctor, error)
	GetSpecialists(ctx context.Context, speciality string) []string

	// Расписание и поиск слотов
	AddDailySchedule(ctx context.Context, doctorID, date, start, end string, durationMinutes int) (int, error)
	GetDailySchedule(ctx context.Context, doctorID, date string) ([]string, error)
	FindSlots(ctx context.Context, date, speciality string) map[string][]string

	// Запись на прием
	BookAppointment(ctx context.Context, ssn, name, surname, doctorID, date, slot string) (string, error)
	GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, doctorID, date string) []string

	// Рабочий день регистратуры
	SetCurrentDate(ctx context.Context, date string) int
	AcceptPatient(ctx context.Context, ssn string) (string, error)
	NextAppointment(ctx context.Context, doctorID string) (string, error)
	CompleteAppointment(ctx context.Context, doctorID, appointmentID string) error

	// Аналитика
	ShowRate(ctx context.Context, doctorID, date string) (float64, error)
	ScheduleCompleteness(ctx context.Context) map[string]float64
}
