package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) (*models.Favorite, error)
	ListByUser(userID uuid.UUID) ([]models.Favorite, error)
	DeleteByUserAndEvent(userID, eventID uuid.UUID) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create is an atomic idempotent insert: on a (user_id, event_id) conflict it
// inserts nothing and returns the existing row. Favoriting twice is user
// intent, not an error.
func (r *favoriteRepository) Create(favorite *models.Favorite) (*models.Favorite, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoNothing: true,
	}).Create(favorite)
	if result.Error != nil {
		return nil, result.Error
	}

	var stored models.Favorite
	err := r.db.Preload("User").Preload("Event").Preload("Event.CreatedBy").
		Where("user_id = ? AND event_id = ?", favorite.UserID, favorite.EventID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *favoriteRepository) ListByUser(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("User").Preload("Event").Preload("Event.CreatedBy").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) DeleteByUserAndEvent(userID, eventID uuid.UUID) error {
	result := r.db.Where("user_id = ? AND event_id = ?", userID, eventID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrFavoriteNotFound
	}
	return nil
}
