package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is offered by exactly one professional. IsCustom marks services
// added outside the suggestion catalog during onboarding.
type Service struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID string `gorm:"type:uuid;index;not null" json:"professional_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	Description string  `gorm:"size:255" json:"description"`
	IsCustom    bool    `gorm:"default:false" json:"is_custom"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
