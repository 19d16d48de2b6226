// Command seed populates a database with synthetic demo data. It is
// the offline replacement for mock HTTP routes: it talks to the same
// tables through the same repositories but exposes nothing over HTTP.
//
// Usage:
//
//	seed -doctors 10
//	seed -doctors 1 -link-email dr.rossi@example.com
//	seed -patient PATIENT_<id> -appointments 5
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/docpoint/booking-backend/internal/config"
	"github.com/docpoint/booking-backend/internal/database"
	"github.com/docpoint/booking-backend/internal/fixtures"
	"github.com/docpoint/booking-backend/internal/logging"
	"github.com/docpoint/booking-backend/internal/repository"
)

func main() {
	doctors := flag.Int("doctors", 0, "number of doctor profiles to generate")
	linkEmail := flag.String("link-email", "", "provision the doctor profile from an existing DOCTOR account")
	patient := flag.String("patient", "", "patient userId to generate appointments for")
	appointments := flag.Int("appointments", 5, "number of appointments to generate for -patient")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	_ = godotenv.Load()
	logging.Setup()
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	gen := fixtures.New(*seed,
		repository.NewUserRepository(database.DB),
		repository.NewDoctorRepository(database.DB),
		repository.NewAppointmentRepository(database.DB),
	)

	if *linkEmail != "" && *doctors == 0 {
		*doctors = 1
	}
	for i := 0; i < *doctors; i++ {
		email := ""
		if i == 0 {
			email = *linkEmail
		}
		doc, err := gen.Doctor(email)
		if err != nil {
			slog.Error("doctor generation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("doctor created", "userId", doc.UserID, "name", doc.Name, "specialty", doc.Specialty)
	}

	if *patient != "" {
		created, err := gen.Appointments(*patient, *appointments)
		if err != nil {
			slog.Error("appointment generation failed", "error", err)
			os.Exit(1)
		}
		for _, a := range created {
			slog.Info("appointment created",
				"appointmentId", a.AppointmentID,
				"doctor", a.DoctorName,
				"date", a.Date.Format(time.RFC3339),
				"status", a.Status,
			)
		}
	}

	if *doctors == 0 && *patient == "" {
		flag.Usage()
	}
}
