package domain

import "errors"

var (
	ErrInvalidSpeciality    = errors.New("speciality is not registered")
	ErrUnknownDoctor        = errors.New("doctor not found")
	ErrInvalidTimeRange     = errors.New("invalid time range")
	ErrNoSchedule           = errors.New("no schedule defined for this date")
	ErrSlotNotFound         = errors.New("slot is not part of the schedule")
	ErrUnknownAppointment   = errors.New("appointment not found")
	ErrDoctorMismatch       = errors.New("appointment belongs to another doctor")
	ErrCurrentDateNotSet    = errors.New("current date is not set")
	ErrNoPatientAppointment = errors.New("no appointment for patient on current date")
	ErrNoAppointments       = errors.New("doctor has no appointments on this date")
)
