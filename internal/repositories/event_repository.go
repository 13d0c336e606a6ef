package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
)

type EventRepository interface {
	Create(event *models.Event) error
	AttachImage(image *models.EventImage) error
	GetByID(id uuid.UUID) (*models.Event, error)
	List(offset, limit int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) AttachImage(image *models.EventImage) error {
	return r.db.Create(image).Error
}

func (r *eventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("CreatedBy").Preload("Participants").Preload("Images").
		Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(offset, limit int) ([]models.Event, int64, error) {
	var totalCount int64
	if err := r.db.Model(&models.Event{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := r.db.Preload("CreatedBy").Preload("Participants").Preload("Images").
		Offset(offset).Limit(limit).Order("date DESC").Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, totalCount, nil
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes the event and everything scoped to it in one transaction, so
// an observer never sees the event gone while its children remain queryable.
func (r *eventRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		children := []interface{}{
			&models.Booking{},
			&models.Favorite{},
			&models.Review{},
			&models.ChatMessage{},
			&models.EventImage{},
		}
		for _, child := range children {
			if err := tx.Where("event_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec("DELETE FROM event_participants WHERE event_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrEventNotFound
		}
		return nil
	})
}
