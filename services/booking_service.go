package services

import (
	"errors"
	"fmt"
	"time"

	"staybnb-backend/models"

	"gorm.io/gorm"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type BookingFields struct {
	PlaceID        uint      `json:"place"`
	NumberOfGuests int       `json:"numberOfGuests"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Price          float64   `json:"price"`
}

// Create records a reservation for the calling user. The referenced place
// must exist.
func (s *BookingService) Create(userID uint, fields BookingFields) (*models.Booking, error) {
	if fields.PlaceID == 0 || fields.Name == "" || fields.Mobile == "" {
		return nil, fmt.Errorf("%w: place, name and mobile are required", ErrValidation)
	}

	var place models.Place
	if err := s.DB.First(&place, fields.PlaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: place does not exist", ErrValidation)
		}
		return nil, fmt.Errorf("find place: %w", err)
	}

	booking := models.Booking{
		PlaceID:        fields.PlaceID,
		UserID:         userID,
		NumberOfGuests: fields.NumberOfGuests,
		CheckIn:        fields.CheckIn,
		CheckOut:       fields.CheckOut,
		Name:           fields.Name,
		Mobile:         fields.Mobile,
		Price:          fields.Price,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

// ListByUser returns the caller's reservations with each place populated.
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Place").Where("user_id = ?", userID).Order("id DESC").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Delete removes a reservation; only its creator may do so.
func (s *BookingService) Delete(id, callerID uint) error {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find booking: %w", err)
	}

	if err := checkOwner(callerID, booking.UserID); err != nil {
		return err
	}

	if err := s.DB.Delete(&models.Booking{}, id).Error; err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}
