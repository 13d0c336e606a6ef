package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
)

type TokenRepository interface {
	Create(token *models.AuthToken) error
	Get(key string) (*models.AuthToken, error)
	Delete(key string) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

func (r *tokenRepository) Get(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where("key = ?", key).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) Delete(key string) error {
	result := r.db.Where("key = ?", key).Delete(&models.AuthToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInvalidToken
	}
	return nil
}
