package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CertificationKindLicense   = "certification"
	CertificationKindInsurance = "insurance"
)

// Certification references an uploaded document in object storage.
type Certification struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID string `gorm:"type:uuid;index" json:"professional_id"`

	Kind        string `gorm:"size:20;not null" json:"kind"`
	ObjectKey   string `gorm:"size:255;not null" json:"object_key"`
	ContentType string `gorm:"size:100" json:"content_type"`
	FileName    string `gorm:"size:255" json:"file_name"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
