package models

import "time"

// Appointment is a confirmed booking. It is never modified once stored.
type Appointment struct {
	ID        int64
	Date      time.Time
	Patient   string
	Caregiver string
	Vaccine   string
}

// Reservation is the result of a successful reserve: the new appointment
// and the patient's full appointment list afterwards.
type Reservation struct {
	Appointment Appointment
	Listing     []Appointment
}
