package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/docpoint/booking-backend/internal/models"
	"github.com/docpoint/booking-backend/internal/repository"
)

// In-memory repository fakes; same equality-filter semantics as the
// GORM implementations.

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(u *models.User) error {
	for _, ex := range f.users {
		if ex.Email == u.Email || ex.UserID == u.UserID {
			return repository.ErrDuplicate
		}
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByUserID(userID string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].UserID == userID {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeDoctorRepo struct {
	doctors []models.Doctor
}

func (f *fakeDoctorRepo) Create(d *models.Doctor) error {
	for _, ex := range f.doctors {
		if ex.Email == d.Email || ex.UserID == d.UserID {
			return repository.ErrDuplicate
		}
	}
	f.doctors = append(f.doctors, *d)
	return nil
}

func (f *fakeDoctorRepo) FindByUserID(userID string) (*models.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].UserID == userID {
			d := f.doctors[i]
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) FindByEmail(email string) (*models.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].Email == email {
			d := f.doctors[i]
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) ListAll() ([]models.Doctor, error) {
	return append([]models.Doctor(nil), f.doctors...), nil
}

type fakeAppointmentRepo struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	for _, ex := range f.appointments {
		if ex.DoctorUserID == a.DoctorUserID && ex.Date.Equal(a.Date) {
			return repository.ErrSlotTaken
		}
	}
	f.appointments = append(f.appointments, *a)
	return nil
}

func (f *fakeAppointmentRepo) ListByDoctor(doctorUserID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorUserID == doctorUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByPatient(patientUserID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientUserID == patientUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func mustJSON(t *testing.T, v any) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return datatypes.JSON(b)
}

// nextWeekday returns the next occurrence of day at the given UTC
// hour, at least one day in the future.
func nextWeekday(day time.Weekday, hour int) time.Time {
	d := time.Now().UTC().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}
