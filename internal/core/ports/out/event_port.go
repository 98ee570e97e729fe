package out

import (
	"context"

	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
)

type AppointmentEvent struct {
	AppointmentID string                   `json:"appointmentId"`
	DoctorID      string                   `json:"doctorId"`
	PatientSSN    string                   `json:"patientSsn"`
	Date          string                   `json:"date"`
	Slot          string                   `json:"slot"`
	Status        domain.AppointmentStatus `json:"status"`
}

type EventPort interface {
	AppointmentBooked(ctx context.Context, event AppointmentEvent) error
	AppointmentAccepted(ctx context.Context, event AppointmentEvent) error
	AppointmentCompleted(ctx context.Context, event AppointmentEvent) error
}
