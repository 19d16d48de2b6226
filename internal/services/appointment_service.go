package services

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/dto"
	"github.com/docpoint/booking-backend/internal/models"
	"github.com/docpoint/booking-backend/internal/repository"
)

var (
	ErrInvalidDate         = apperr.Validation("Invalid date")
	ErrDoctorNotAvailable  = apperr.Conflict("Doctor not available")
	ErrAppointmentTaken    = apperr.Conflict("Appointment already taken. Doctor not available on the selected date, try with another one")
	ErrAppointmentsMissing = apperr.NotFound("No appointments found")
)

// AppointmentService is the booking core. A doctor's availability is a
// weekly template (weekday + hours); occupancy is tracked per exact
// timestamp, so the same weekly slot stays independently bookable
// across different weeks.
//
// Timezone policy: requested dates are normalized to UTC and the
// weekday/hour used for the template match are derived in UTC.
type AppointmentService struct {
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
}

func NewAppointmentService(doctors repository.DoctorRepository, appointments repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{doctors: doctors, appointments: appointments}
}

// ListMine returns the appointments visible to the caller: a doctor
// sees bookings against them, a patient sees bookings they made.
func (s *AppointmentService) ListMine(id models.Identity) ([]models.Appointment, error) {
	var (
		out []models.Appointment
		err error
	)
	if id.Role == models.RoleDoctor {
		out, err = s.appointments.ListByDoctor(id.UserID)
	} else {
		out, err = s.appointments.ListByPatient(id.UserID)
	}
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrAppointmentsMissing
	}
	return out, nil
}

// Create books a slot for the calling patient.
func (s *AppointmentService) Create(id models.Identity, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.Date == "" {
		return nil, ErrInvalidDate
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	date = date.UTC()
	if !date.After(time.Now()) {
		return nil, ErrInvalidDate
	}
	if req.DoctorUserID == "" {
		return nil, apperr.Validation("doctorUserId is required")
	}

	doctor, err := s.doctors.FindByUserID(req.DoctorUserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	// template match only; booked slots never shrink the template
	ok, err := available(doctor, date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDoctorNotAvailable
	}

	apt := models.Appointment{
		AppointmentID: "APPOINTMENT_" + uuid.NewString(),
		DoctorUserID:  doctor.UserID,
		PatientUserID: id.UserID,
		Date:          date,
		DoctorName:    doctor.Name,
		DoctorEmail:   doctor.Email,
		PatientName:   id.FullName,
		PatientEmail:  id.Email,
		Status:        models.StatusUpcoming,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.appointments.Create(&apt); err != nil {
		if err == repository.ErrSlotTaken {
			return nil, ErrAppointmentTaken
		}
		return nil, err
	}
	return &apt, nil
}

// available reports whether the template contains the date's UTC
// weekday and hour. A profile whose availability column fails to
// decode is a server-side fault, not a free calendar.
func available(doctor *models.Doctor, date time.Time) (bool, error) {
	entries, err := doctor.AvailabilityList()
	if err != nil {
		return false, fmt.Errorf("decoding availability for %s: %w", doctor.UserID, err)
	}
	day := date.Weekday().String()
	hour := date.Hour()
	for _, e := range entries {
		if e.Day == day && slices.Contains(e.Hours, hour) {
			return true, nil
		}
	}
	return false, nil
}
