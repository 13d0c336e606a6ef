package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
)

type ChatMessageRepository interface {
	Create(message *models.ChatMessage) error
	ListByEvent(eventID uuid.UUID) ([]models.ChatMessage, error)
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListByEvent returns the transcript in conversational order, oldest first.
func (r *chatMessageRepository) ListByEvent(eventID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Preload("Sender").
		Where("event_id = ?", eventID).Order("timestamp ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
