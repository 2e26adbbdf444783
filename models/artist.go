package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores an ordered list of tags as a JSON column.
type StringList []string

// Value implements the driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}

// Artist is a makeup artist's public profile. Rating and ReviewCount are
// derived values: always the mean and count of the reviews referencing this
// artist's bookings.
type Artist struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Specialties StringList `json:"specialties" gorm:"type:jsonb"`
	Rating      float64    `json:"rating" gorm:"type:decimal(2,1)"`
	ReviewCount int        `json:"review_count"`
	HourlyRate  float64    `json:"hourly_rate"`
	Location    string     `json:"location"`
	Bio         string     `json:"bio"`
	Image       string     `json:"image"`
	TimeSlots   []TimeSlot `json:"time_slots" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TimeSlot is an artist-published, bookable unit of time with a fixed
// service and price. Date is "YYYY-MM-DD", Time is "HH:MM" in 24h, and
// Duration is in hours with 0.5 increments.
type TimeSlot struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	ArtistID    string    `json:"artist_id" gorm:"index"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Duration    float64   `json:"duration"`
	Service     string    `json:"service"`
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArtistPatch carries the fields UpdateArtist may merge into a profile.
// Nil fields are left untouched; slots are never patched this way.
type ArtistPatch struct {
	Name        *string     `json:"name"`
	Email       *string     `json:"email"`
	Specialties *StringList `json:"specialties"`
	HourlyRate  *float64    `json:"hourly_rate"`
	Location    *string     `json:"location"`
	Bio         *string     `json:"bio"`
	Image       *string     `json:"image"`
}
