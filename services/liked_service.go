package services

import (
	"errors"
	"fmt"

	"staybnb-backend/models"

	"gorm.io/gorm"
)

type LikedService struct {
	DB *gorm.DB
}

func NewLikedService(db *gorm.DB) *LikedService {
	return &LikedService{DB: db}
}

// Like favorites a place for a user. A second like of the same place is
// rejected with ErrConflict; the composite unique index backstops the
// existence check, so a racing duplicate resolves to ErrConflict as well.
func (s *LikedService) Like(userID, placeID uint) (*models.Liked, error) {
	if placeID == 0 {
		return nil, fmt.Errorf("%w: place is required", ErrValidation)
	}

	var existing models.Liked
	err := s.DB.Where("user_id = ? AND place_id = ?", userID, placeID).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: place already liked", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing like: %w", err)
	}

	liked := models.Liked{UserID: userID, PlaceID: placeID}
	if err := s.DB.Create(&liked).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: place already liked", ErrConflict)
		}
		return nil, fmt.Errorf("create like: %w", err)
	}
	return &liked, nil
}

// ListByUser returns the caller's favorites with each place populated.
func (s *LikedService) ListByUser(userID uint) ([]models.Liked, error) {
	var liked []models.Liked
	err := s.DB.Preload("Place").Where("user_id = ?", userID).Order("id DESC").Find(&liked).Error
	if err != nil {
		return nil, fmt.Errorf("list liked: %w", err)
	}
	return liked, nil
}

// Unlike removes the caller's favorite for a place. No matching record is
// ErrNotFound; a record held by someone else is ErrUnauthorized.
func (s *LikedService) Unlike(callerID, placeID uint) error {
	var liked models.Liked
	err := s.DB.Where("place_id = ?", placeID).Where("user_id = ?", callerID).First(&liked).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// fall back to any record for the place so a wrong-owner delete is
		// reported as unauthorized rather than missing
		if err2 := s.DB.Where("place_id = ?", placeID).First(&liked).Error; err2 != nil {
			if errors.Is(err2, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("find like: %w", err2)
		}
		return checkOwner(callerID, liked.UserID)
	}
	if err != nil {
		return fmt.Errorf("find like: %w", err)
	}

	if err := checkOwner(callerID, liked.UserID); err != nil {
		return err
	}

	if err := s.DB.Delete(&models.Liked{}, liked.ID).Error; err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}
