package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/docpoint/booking-backend/internal/models"
)

type DoctorRepository interface {
	Create(d *models.Doctor) error
	FindByUserID(userID string) (*models.Doctor, error)
	FindByEmail(email string) (*models.Doctor, error)
	ListAll() ([]models.Doctor, error)
}

type gormDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &gormDoctorRepository{db: db}
}

func (r *gormDoctorRepository) Create(d *models.Doctor) error {
	if err := r.db.Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *gormDoctorRepository) FindByUserID(userID string) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.Where("user_id = ?", userID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *gormDoctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.Where("email = ?", email).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *gormDoctorRepository) ListAll() ([]models.Doctor, error) {
	var out []models.Doctor
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
