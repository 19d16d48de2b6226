package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DayAvailability is one entry of a doctor's weekly availability template:
// a weekday name plus the bookable hours of day, unique and ascending.
type DayAvailability struct {
	Day   string `json:"day"`
	Hours []int  `json:"hours"`
}

type Review struct {
	Patient string `json:"patient"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Doctor is a directory profile. Availability is the authoritative
// template for booking eligibility; nested fields stay jsonb so the
// profile round-trips as one document.
type Doctor struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID         string         `gorm:"size:80;not null;uniqueIndex" json:"userId"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Email          string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Avatar         string         `gorm:"size:512" json:"avatar"`
	Specialty      string         `gorm:"size:100" json:"specialty"`
	Experience     string         `gorm:"size:100" json:"experience"`
	Qualifications datatypes.JSON `gorm:"type:jsonb" json:"qualifications"`
	Reviews        datatypes.JSON `gorm:"type:jsonb" json:"reviews"`
	Availability   datatypes.JSON `gorm:"type:jsonb" json:"availability"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// AvailabilityList decodes the jsonb availability column.
func (d *Doctor) AvailabilityList() ([]DayAvailability, error) {
	if len(d.Availability) == 0 {
		return nil, nil
	}
	var out []DayAvailability
	if err := json.Unmarshal(d.Availability, &out); err != nil {
		return nil, err
	}
	return out, nil
}
