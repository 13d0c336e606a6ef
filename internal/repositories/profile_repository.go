package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
)

type ProfileRepository interface {
	GetOrCreateByUser(userID uuid.UUID) (*models.Profile, error)
	Update(profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreateByUser provisions an empty profile on first access.
func (r *profileRepository) GetOrCreateByUser(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where(models.Profile{UserID: userID}).
		FirstOrCreate(&profile, models.Profile{UserID: userID}).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.Preload("User").Where("id = ?", profile.ID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
