package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	Rating    int       `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (review *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	return
}

func (review *Review) OwnerID() uuid.UUID {
	return review.UserID
}
