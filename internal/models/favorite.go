package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a pure membership marker, unique per (user, event).
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_event" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_event" json:"-"`
	Event     Event     `gorm:"foreignKey:EventID" json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

func (favorite *Favorite) BeforeCreate(tx *gorm.DB) (err error) {
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	return
}

func (favorite *Favorite) OwnerID() uuid.UUID {
	return favorite.UserID
}
