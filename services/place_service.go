package services

import (
	"errors"
	"fmt"
	"strings"

	"staybnb-backend/models"

	"gorm.io/gorm"
)

type PlaceService struct {
	DB *gorm.DB
}

func NewPlaceService(db *gorm.DB) *PlaceService {
	return &PlaceService{DB: db}
}

// PlaceFields is the mutable part of a listing, as it arrives on the wire.
type PlaceFields struct {
	Title          string   `json:"title"`
	Address        string   `json:"address"`
	AddedPhotos    []string `json:"addedPhotos"`
	Description    string   `json:"description"`
	Perks          []string `json:"perks"`
	LocalLandmarks string   `json:"localLandmarks"`
	ExtraInfo      string   `json:"extraInfo"`
	CheckIn        string   `json:"checkIn"`
	CheckOut       string   `json:"checkOut"`
	MaxGuests      int      `json:"maxGuests"`
	Price          float64  `json:"price"`
}

func (f PlaceFields) apply(p *models.Place) error {
	photos, err := toJSONList(f.AddedPhotos)
	if err != nil {
		return err
	}
	perks, err := toJSONList(f.Perks)
	if err != nil {
		return err
	}

	p.Title = f.Title
	p.Address = f.Address
	p.Photos = photos
	p.Perks = perks
	p.Description = f.Description
	p.LocalLandmarks = f.LocalLandmarks
	p.ExtraInfo = f.ExtraInfo
	p.CheckIn = f.CheckIn
	p.CheckOut = f.CheckOut
	p.MaxGuests = f.MaxGuests
	p.Price = f.Price
	return nil
}

func (s *PlaceService) Create(ownerID uint, fields PlaceFields) (*models.Place, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	place := models.Place{OwnerID: ownerID}
	if err := fields.apply(&place); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.DB.Create(&place).Error; err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}
	return &place, nil
}

// ListByOwner returns the caller's own listings.
func (s *PlaceService) ListByOwner(ownerID uint) ([]models.Place, error) {
	var places []models.Place
	err := s.DB.Where("owner_id = ?", ownerID).Order("id DESC").Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return places, nil
}

// ListAll is the public catalog: every listing with its owner populated.
func (s *PlaceService) ListAll() ([]models.Place, error) {
	var places []models.Place
	err := s.DB.Preload("Owner").Order("id DESC").Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return places, nil
}

func (s *PlaceService) GetByID(id uint) (*models.Place, error) {
	var place models.Place
	if err := s.DB.Preload("Owner").First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return &place, nil
}

// Update replaces the listing's fields after verifying the caller owns it.
func (s *PlaceService) Update(id, callerID uint, fields PlaceFields) (*models.Place, error) {
	var place models.Place
	if err := s.DB.First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}

	if err := checkOwner(callerID, place.OwnerID); err != nil {
		return nil, err
	}

	if err := fields.apply(&place); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.DB.Save(&place).Error; err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}
	return &place, nil
}

func (s *PlaceService) Delete(id, callerID uint) error {
	var place models.Place
	if err := s.DB.First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find place: %w", err)
	}

	if err := checkOwner(callerID, place.OwnerID); err != nil {
		return err
	}

	if err := s.DB.Delete(&models.Place{}, id).Error; err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}
