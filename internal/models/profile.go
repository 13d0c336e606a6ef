package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is one-to-one with User. The KYC verification fields are only ever
// written by the server; the profile update path must never copy them from
// client input.
type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	User     User      `gorm:"foreignKey:UserID" json:"user"`
	Bio      string    `json:"bio"`
	Hobbies  string    `json:"hobbies"`
	Avatar   string    `json:"avatar,omitempty"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`

	FullName          string     `json:"full_name"`
	CitizenshipNumber string     `json:"citizenship_number"`
	DocumentImage     string     `json:"document_image,omitempty"`
	IsKYCVerified     bool       `gorm:"not null;default:false" json:"is_kyc_verified"`
	KYCSubmittedAt    *time.Time `json:"kyc_submitted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (profile *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return
}

func (profile *Profile) OwnerID() uuid.UUID {
	return profile.UserID
}
