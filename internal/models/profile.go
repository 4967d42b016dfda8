package models

import "time"

const (
	ProfileTypeClient       = "client"
	ProfileTypeProfessional = "professional"
)

// Profile is the base identity record shared by clients and professionals.
// ID equals the owning auth user's ID. Type is fixed at creation.
type Profile struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	// Username is optional for clients; nullable so absent names never
	// collide on the unique index.
	Username *string `gorm:"size:50;uniqueIndex" json:"username"`
	Type      string `gorm:"size:20;not null" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
