package services

import (
	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/models"
	"github.com/docpoint/booking-backend/internal/repository"
)

var ErrDoctorNotFound = apperr.NotFound("Doctor not found")

// DoctorService is the read-only directory of doctor profiles.
type DoctorService struct {
	doctors repository.DoctorRepository
}

func NewDoctorService(doctors repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctors: doctors}
}

// ListAll returns every profile, unfiltered and unpaginated. An empty
// directory answers 404.
func (s *DoctorService) ListAll() ([]models.Doctor, error) {
	doctors, err := s.doctors.ListAll()
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrDoctorNotFound
	}
	return doctors, nil
}
