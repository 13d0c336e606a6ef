package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Sender    User      `gorm:"foreignKey:SenderID" json:"sender"`
	Message   string    `gorm:"not null" json:"message"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (message *ChatMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return
}

func (message *ChatMessage) OwnerID() uuid.UUID {
	return message.SenderID
}
