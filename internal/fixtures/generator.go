// Package fixtures generates synthetic doctors and appointments for
// demo environments. It shares the production models and repositories
// but is only reachable from the offline seed command — nothing here
// is mounted on a router.
package fixtures

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/models"
	"github.com/docpoint/booking-backend/internal/repository"
)

var (
	ErrDoctorEmailTaken  = apperr.Conflict("E-mail already in use")
	ErrDoctorAccountGone = apperr.NotFound("Doctor not found")
	ErrPatientNotFound   = apperr.NotFound("Patient not found")
)

type Generator struct {
	rng          *rand.Rand
	users        repository.UserRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
}

func New(seed int64, users repository.UserRepository, doctors repository.DoctorRepository, appointments repository.AppointmentRepository) *Generator {
	return &Generator{
		rng:          rand.New(rand.NewSource(seed)),
		users:        users,
		doctors:      doctors,
		appointments: appointments,
	}
}

// Doctor fabricates and persists one doctor profile. With a non-empty
// linkEmail the profile is provisioned from an existing DOCTOR account
// instead: the account's user id, name and email are reused, a second
// profile for the same email is refused.
func (g *Generator) Doctor(linkEmail string) (*models.Doctor, error) {
	name := g.pick(firstNames) + " " + g.pick(lastNames)
	email := fmt.Sprintf("%s@clinic-demo.example", uuid.NewString()[:8])
	userID := string(models.RoleDoctor) + "_" + uuid.NewString()

	if linkEmail != "" {
		if _, err := g.doctors.FindByEmail(linkEmail); err == nil {
			return nil, ErrDoctorEmailTaken
		} else if err != repository.ErrNotFound {
			return nil, err
		}
		account, err := g.users.FindByEmail(linkEmail)
		if err != nil {
			if err == repository.ErrNotFound {
				return nil, ErrDoctorAccountGone
			}
			return nil, err
		}
		if account.Role != models.RoleDoctor {
			return nil, ErrDoctorAccountGone
		}
		name = account.FullName
		email = account.Email
		userID = account.UserID
	}

	availability, err := marshal(g.Availability())
	if err != nil {
		return nil, err
	}
	qualifications, err := marshal(g.qualifications())
	if err != nil {
		return nil, err
	}
	reviews, err := marshal(g.reviews())
	if err != nil {
		return nil, err
	}

	doctor := models.Doctor{
		UserID:         userID,
		Name:           name,
		Email:          email,
		Avatar:         fmt.Sprintf("https://i.pravatar.cc/150?u=%s", userID),
		Specialty:      g.pick(Specializations),
		Experience:     fmt.Sprintf("%d years", 1+g.rng.Intn(40)),
		Qualifications: qualifications,
		Reviews:        reviews,
		Availability:   availability,
	}
	if err := g.doctors.Create(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// Availability builds a full weekly template: every weekday gets a
// random non-empty set of unique ascending bookable hours.
func (g *Generator) Availability() []models.DayAvailability {
	out := make([]models.DayAvailability, 0, len(DaysOfWeek))
	for _, day := range DaysOfWeek {
		count := 1 + g.rng.Intn(len(BookableHours))
		picked := make(map[int]bool, count)
		for len(picked) < count {
			picked[g.pickInt(BookableHours)] = true
		}
		hours := make([]int, 0, len(picked))
		for h := range picked {
			hours = append(hours, h)
		}
		sort.Ints(hours)
		out = append(out, models.DayAvailability{Day: day, Hours: hours})
	}
	return out
}

// Appointments books up to count random slots for the given patient,
// drawn from every doctor's availability. Slots already taken are
// skipped rather than failing the run.
func (g *Generator) Appointments(patientUserID string, count int) ([]models.Appointment, error) {
	patient, err := g.users.FindByUserID(patientUserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	doctors, err := g.doctors.ListAll()
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrDoctorAccountGone
	}

	type slot struct {
		doctor *models.Doctor
		day    string
		hour   int
	}
	var slots []slot
	for i := range doctors {
		entries, err := doctors[i].AvailabilityList()
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			for _, h := range e.Hours {
				slots = append(slots, slot{doctor: &doctors[i], day: e.Day, hour: h})
			}
		}
	}
	g.rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })
	if count > len(slots) {
		count = len(slots)
	}

	var out []models.Appointment
	for _, s := range slots[:count] {
		date, ok := g.randomDateFor(s.day, s.hour)
		if !ok {
			continue
		}
		status := models.StatusUpcoming
		if !date.After(time.Now()) {
			status = g.randomStatus()
		}
		apt := models.Appointment{
			AppointmentID: "APPOINTMENT_" + uuid.NewString(),
			DoctorUserID:  s.doctor.UserID,
			PatientUserID: patient.UserID,
			Date:          date,
			DoctorName:    s.doctor.Name,
			DoctorEmail:   s.doctor.Email,
			PatientName:   patient.FullName,
			PatientEmail:  patient.Email,
			Status:        status,
			CreatedAt:     time.Now().UTC(),
		}
		if err := g.appointments.Create(&apt); err != nil {
			if err == repository.ErrSlotTaken {
				continue
			}
			return nil, err
		}
		out = append(out, apt)
	}
	return out, nil
}

// randomDateFor picks a random date in the current year whose UTC
// weekday matches day, at the given hour. Reports false when day is
// not a weekday name, so malformed availability rows cannot crash a
// seed run.
func (g *Generator) randomDateFor(day string, hour int) (time.Time, bool) {
	year := time.Now().UTC().Year()
	var matches []time.Time
	d := time.Date(year, time.January, 1, hour, 0, 0, 0, time.UTC)
	for d.Year() == year {
		if d.Weekday().String() == day {
			matches = append(matches, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	if len(matches) == 0 {
		return time.Time{}, false
	}
	return matches[g.rng.Intn(len(matches))], true
}

func (g *Generator) qualifications() []string {
	count := 1 + g.rng.Intn(5)
	picked := make(map[string]bool, count)
	for len(picked) < count {
		picked[g.pick(Qualifications)] = true
	}
	out := make([]string, 0, len(picked))
	for q := range picked {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}

func (g *Generator) reviews() []models.Review {
	count := 5 + g.rng.Intn(16)
	out := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		past := time.Now().AddDate(0, 0, -(1 + g.rng.Intn(365)))
		out = append(out, models.Review{
			Patient: g.pick(firstNames),
			Date:    past.Format("2006-01-02"),
			Rating:  1 + g.rng.Intn(5),
			Comment: g.pick(reviewComments),
		})
	}
	return out
}

func (g *Generator) randomStatus() models.AppointmentStatus {
	statuses := []models.AppointmentStatus{
		models.StatusUpcoming,
		models.StatusCompleted,
		models.StatusCanceled,
	}
	return statuses[g.rng.Intn(len(statuses))]
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

func (g *Generator) pickInt(list []int) int {
	return list[g.rng.Intn(len(list))]
}

func marshal(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
