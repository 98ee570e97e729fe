package domain

import (
	"strings"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusAccepted  AppointmentStatus = "accepted"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID       string            `json:"id"`
	SSN      string            `json:"ssn"`
	Name     string            `json:"name"`
	Surname  string            `json:"surname"`
	DoctorID string            `json:"doctorId"`
	Date     string            `json:"date"`
	Slot     string            `json:"slot"`
	Status   AppointmentStatus `json:"status"`
}

func NewAppointment(ssn, name, surname, doctorID, date, slot string) *Appointment {
	return &Appointment{
		ID:       uuid.NewString(),
		SSN:      ssn,
		Name:     name,
		Surname:  surname,
		DoctorID: doctorID,
		Date:     date,
		Slot:     slot,
		Status:   AppointmentStatusBooked,
	}
}

// StartTime - начало слота, компонента "HH:MM" до дефиса.
func (a *Appointment) StartTime() string {
	return strings.SplitN(a.Slot, "-", 2)[0]
}

// Showed - пациент пришел на прием: запись принята или уже завершена.
func (a *Appointment) Showed() bool {
	return a.Status == AppointmentStatusAccepted || a.Status == AppointmentStatusCompleted
}

// Accept переводит запись из booked в accepted. Переходы только вперед:
// завершенная запись не возвращается в очередь. Возвращает, сменился ли статус.
func (a *Appointment) Accept() bool {
	if a.Status != AppointmentStatusBooked {
		return false
	}
	a.Status = AppointmentStatusAccepted
	return true
}

func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// String возвращает запись в формате "HH:MM=SSN" для списков приема.
func (a *Appointment) String() string {
	return a.StartTime() + "=" + a.SSN
}
