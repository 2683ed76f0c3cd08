package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Verification status constants
const (
	VerificationStatusPending  = "pending"
	VerificationStatusVerified = "verified"
	VerificationStatusRejected = "rejected"
)

// StringList stores a set of strings as a JSON column
type StringList []string

// Value implements driver.Valuer
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Professional represents a verified service provider listed in the marketplace
type Professional struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"uniqueIndex"`
	User            User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name            string     `json:"name" gorm:"not null"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Profession      string     `json:"profession" gorm:"not null;index"`
	ExperienceYears int        `json:"experience_years"`
	City            string     `json:"city" gorm:"index"`
	Pincode         string     `json:"pincode"`
	Village         string     `json:"village"`
	Taluka          string     `json:"taluka"`
	District        string     `json:"district"`
	Address         string     `json:"address"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	Skills          StringList `json:"skills" gorm:"type:text"`
	Specializations StringList `json:"specializations" gorm:"type:text"`
	PriceRange      string     `json:"price_range"`
	About           string     `json:"about"`
	PhotoURL        string     `json:"photo_url"`

	VerificationStatus string     `json:"verification_status" gorm:"default:'pending';index"`
	VerifiedAt         *time.Time `json:"verified_at"`
	RejectionReason    string     `json:"rejection_reason"`

	AverageRating float64 `json:"average_rating" gorm:"default:0"`
	TotalRatings  int     `json:"total_ratings" gorm:"default:0"`
}

// IsVerified reports whether the profile has passed verification
func (p *Professional) IsVerified() bool {
	return p.VerificationStatus == VerificationStatusVerified
}

// ApplyRating folds a new star rating into the aggregate
func (p *Professional) ApplyRating(stars int) {
	total := p.AverageRating*float64(p.TotalRatings) + float64(stars)
	p.TotalRatings++
	p.AverageRating = total / float64(p.TotalRatings)
}
