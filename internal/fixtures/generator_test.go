package fixtures_test

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/docpoint/booking-backend/internal/fixtures"
	"github.com/docpoint/booking-backend/internal/models"
	"github.com/docpoint/booking-backend/internal/repository"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(u *models.User) error {
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
	return nil, nil
}

func (f *fakeAppointmentRepo) ListByPatient(patientUserID string) ([]models.Appointment, error) {
	return nil, nil
}

func newGenerator(seed int64) (*fixtures.Generator, *fakeUserRepo, *fakeDoctorRepo, *fakeAppointmentRepo) {
	users := &fakeUserRepo{}
	doctors := &fakeDoctorRepo{}
	appointments := &fakeAppointmentRepo{}
	return fixtures.New(seed, users, doctors, appointments), users, doctors, appointments
}

func TestDoctorProfileShape(t *testing.T) {
	gen, _, doctors, _ := newGenerator(1)

	doc, err := gen.Doctor("")
	require.NoError(t, err)
	require.Len(t, doctors.doctors, 1)

	assert.Contains(t, doc.UserID, "DOCTOR_")
	assert.NotEmpty(t, doc.Name)
	assert.NotEmpty(t, doc.Email)
	assert.Contains(t, fixtures.Specializations, doc.Specialty)

	var quals []string
	require.NoError(t, json.Unmarshal(doc.Qualifications, &quals))
	assert.GreaterOrEqual(t, len(quals), 1)
	assert.LessOrEqual(t, len(quals), 5)
	for i, q := range quals {
		assert.Contains(t, fixtures.Qualifications, q)
		assert.NotContains(t, quals[:i], q, "qualifications must be unique")
	}

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(doc.Reviews, &reviews))
	assert.GreaterOrEqual(t, len(reviews), 5)
	assert.LessOrEqual(t, len(reviews), 20)
	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.Patient)
		assert.NotEmpty(t, r.Comment)
	}
}

func TestAvailabilityCoversEveryDay(t *testing.T) {
	gen, _, _, _ := newGenerator(2)

	availability := gen.Availability()
	require.Len(t, availability, len(fixtures.DaysOfWeek))

	for i, entry := range availability {
		assert.Equal(t, fixtures.DaysOfWeek[i], entry.Day)
		require.NotEmpty(t, entry.Hours, "day %s must have at least one hour", entry.Day)
		assert.True(t, slices.IsSorted(entry.Hours))
		for j, h := range entry.Hours {
			assert.Contains(t, fixtures.BookableHours, h)
			assert.NotContains(t, entry.Hours[:j], h, "hours must be unique")
		}
	}
}

func TestSameSeedSameDoctors(t *testing.T) {
	genA, _, _, _ := newGenerator(42)
	genB, _, _, _ := newGenerator(42)

	a, err := genA.Doctor("")
	require.NoError(t, err)
	b, err := genB.Doctor("")
	require.NoError(t, err)

	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Specialty, b.Specialty)
	assert.JSONEq(t, string(a.Availability), string(b.Availability))
}

func TestDoctorLinkedToAccount(t *testing.T) {
	gen, users, _, _ := newGenerator(3)
	require.NoError(t, users.Create(&models.User{
		UserID:   "DOCTOR_real",
		Email:    "greta@clinic.example",
		Role:     models.RoleDoctor,
		FullName: "Greta Hoffmann",
	}))

	doc, err := gen.Doctor("greta@clinic.example")
	require.NoError(t, err)
	assert.Equal(t, "DOCTOR_real", doc.UserID)
	assert.Equal(t, "Greta Hoffmann", doc.Name)
	assert.Equal(t, "greta@clinic.example", doc.Email)
}

func TestDoctorLinkRejectsSecondProfile(t *testing.T) {
	gen, users, _, _ := newGenerator(4)
	require.NoError(t, users.Create(&models.User{
		UserID: "DOCTOR_real",
		Email:  "greta@clinic.example",
		Role:   models.RoleDoctor,
	}))

	_, err := gen.Doctor("greta@clinic.example")
	require.NoError(t, err)

	_, err = gen.Doctor("greta@clinic.example")
	assert.ErrorIs(t, err, fixtures.ErrDoctorEmailTaken)
}

func TestDoctorLinkRejectsPatientAccount(t *testing.T) {
	gen, users, _, _ := newGenerator(5)
	require.NoError(t, users.Create(&models.User{
		UserID: "PATIENT_p1",
		Email:  "ada@example.com",
		Role:   models.RolePatient,
	}))

	_, err := gen.Doctor("ada@example.com")
	assert.ErrorIs(t, err, fixtures.ErrDoctorAccountGone)
}

func TestDoctorLinkRejectsMissingAccount(t *testing.T) {
	gen, _, _, _ := newGenerator(6)

	_, err := gen.Doctor("nobody@example.com")
	assert.ErrorIs(t, err, fixtures.ErrDoctorAccountGone)
}

func TestAppointmentsMatchAvailability(t *testing.T) {
	gen, users, _, _ := newGenerator(7)
	require.NoError(t, users.Create(&models.User{
		UserID:   "PATIENT_p1",
		Email:    "ada@example.com",
		Role:     models.RolePatient,
		FullName: "Ada Abbott",
	}))
	doc, err := gen.Doctor("")
	require.NoError(t, err)

	booked, err := gen.Appointments("PATIENT_p1", 5)
	require.NoError(t, err)
	require.NotEmpty(t, booked)
	assert.LessOrEqual(t, len(booked), 5)

	availability, err := doc.AvailabilityList()
	require.NoError(t, err)
	byDay := map[string][]int{}
	for _, e := range availability {
		byDay[e.Day] = e.Hours
	}

	for _, apt := range booked {
		assert.Equal(t, doc.UserID, apt.DoctorUserID)
		assert.Equal(t, "PATIENT_p1", apt.PatientUserID)
		assert.Equal(t, "Ada Abbott", apt.PatientName)
		assert.Contains(t, byDay[apt.Date.UTC().Weekday().String()], apt.Date.UTC().Hour(),
			"booked slot must come from the weekly template")

		if apt.Date.After(time.Now()) {
			assert.Equal(t, models.StatusUpcoming, apt.Status)
		} else {
			assert.Contains(t, []models.AppointmentStatus{
				models.StatusUpcoming,
				models.StatusCompleted,
				models.StatusCanceled,
			}, apt.Status)
		}
	}
}

func TestAppointmentsSkipTakenSlots(t *testing.T) {
	gen, users, _, appointments := newGenerator(8)
	require.NoError(t, users.Create(&models.User{
		UserID: "PATIENT_p1",
		Email:  "ada@example.com",
		Role:   models.RolePatient,
	}))
	_, err := gen.Doctor("")
	require.NoError(t, err)

	first, err := gen.Appointments("PATIENT_p1", 3)
	require.NoError(t, err)
	_, err = gen.Appointments("PATIENT_p1", 3)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, apt := range appointments.appointments {
		key := apt.DoctorUserID + apt.Date.Format(time.RFC3339)
		assert.False(t, seen[key], "no slot may be booked twice")
		seen[key] = true
	}
	assert.GreaterOrEqual(t, len(appointments.appointments), len(first))
}

func TestAppointmentsSkipNonWeekdayDays(t *testing.T) {
	gen, users, doctors, _ := newGenerator(10)
	require.NoError(t, users.Create(&models.User{
		UserID: "PATIENT_p1",
		Email:  "ada@example.com",
		Role:   models.RolePatient,
	}))

	availability, err := json.Marshal([]models.DayAvailability{
		{Day: "Someday", Hours: []int{9}},
	})
	require.NoError(t, err)
	require.NoError(t, doctors.Create(&models.Doctor{
		UserID:       "DOCTOR_bad",
		Name:         "Greta Hoffmann",
		Email:        "greta@clinic.example",
		Availability: datatypes.JSON(availability),
	}))

	booked, err := gen.Appointments("PATIENT_p1", 3)
	require.NoError(t, err, "a malformed day name must not abort the run")
	assert.Empty(t, booked)
}

func TestAppointmentsUnknownPatient(t *testing.T) {
	gen, _, _, _ := newGenerator(9)

	_, err := gen.Appointments("PATIENT_ghost", 3)
	assert.ErrorIs(t, err, fixtures.ErrPatientNotFound)
}
