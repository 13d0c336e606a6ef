package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	ListByEvent(eventID uuid.UUID) ([]models.Review, error)
	ListAll() ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) ListByEvent(eventID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").Where("event_id = ?", eventID).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Preload("User").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
