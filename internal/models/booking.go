package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a scheduled engagement between a client and a professional.
// Status transitions are enforced in internal/domain/booking.
type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string  `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   Profile `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID string       `gorm:"type:uuid;index;not null" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	BookingDate time.Time `gorm:"index" json:"booking_date"`
	Status      string    `gorm:"size:20;default:'pending'" json:"status"`
	Location    string    `gorm:"size:255" json:"location"`
	Notes       string    `gorm:"size:255" json:"notes"`
	TotalAmount float64   `json:"total_amount"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
