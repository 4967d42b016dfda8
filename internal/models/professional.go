package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Professional extends a profile with service-provider attributes.
// Verified defaults to false; an external review process flips it.
type Professional struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID string  `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Profile   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`

	ServiceArea     string   `gorm:"size:255;not null" json:"service_area"`
	ServiceRadius   int      `gorm:"default:10" json:"service_radius"`
	TravelFee       *float64 `json:"travel_fee"`
	YearsExperience string   `gorm:"size:20" json:"years_experience"`
	Bio             string   `gorm:"type:text" json:"bio"`
	Verified        bool     `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
