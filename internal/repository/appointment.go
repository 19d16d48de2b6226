package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/docpoint/booking-backend/internal/models"
)

type AppointmentRepository interface {
	// Create persists the appointment only if the (doctor, timestamp)
	// slot is still free; otherwise it returns ErrSlotTaken.
	Create(a *models.Appointment) error
	ListByDoctor(doctorUserID string) ([]models.Appointment, error)
	ListByPatient(patientUserID string) ([]models.Appointment, error)
}

type gormAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &gormAppointmentRepository{db: db}
}

// Create wraps the conflict check and the insert in one transaction.
// The unique index on (doctor_user_id, date) catches the race two
// concurrent transactions can still produce, so the check-then-act
// sequence never yields a double booking.
func (r *gormAppointmentRepository) Create(a *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&models.Appointment{}).
			Where("doctor_user_id = ? AND date = ?", a.DoctorUserID, a.Date).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if err := tx.Create(a).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

func (r *gormAppointmentRepository) ListByDoctor(doctorUserID string) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := r.db.Where("doctor_user_id = ?", doctorUserID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormAppointmentRepository) ListByPatient(patientUserID string) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := r.db.Where("patient_user_id = ?", patientUserID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
