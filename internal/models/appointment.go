package models

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "UPCOMING"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCanceled  AppointmentStatus = "CANCELED"
)

// Appointment is one booked slot. The unique index on
// (doctor_user_id, date) is the conditional-write backstop that keeps a
// doctor from being double-booked at the same timestamp even when two
// requests race past the application-level check.
//
// Doctor and patient name/email are snapshots taken at booking time and
// are intentionally never updated afterwards.
type Appointment struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	AppointmentID string            `gorm:"size:80;not null;uniqueIndex" json:"appointmentId"`
	DoctorUserID  string            `gorm:"size:80;not null;uniqueIndex:idx_appointments_doctor_date" json:"doctorUserId"`
	PatientUserID string            `gorm:"size:80;not null;index" json:"patientUserId"`
	Date          time.Time         `gorm:"not null;uniqueIndex:idx_appointments_doctor_date" json:"date"`
	DoctorName    string            `gorm:"size:255" json:"doctorName"`
	DoctorEmail   string            `gorm:"size:255" json:"doctorEmail"`
	PatientName   string            `gorm:"size:255" json:"patientName"`
	PatientEmail  string            `gorm:"size:255" json:"patientEmail"`
	Status        AppointmentStatus `gorm:"size:12;not null" json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}
