package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken keeps every issued token server-side so logout can revoke it.
type AuthToken struct {
	Key       string    `gorm:"primary_key" json:"key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
