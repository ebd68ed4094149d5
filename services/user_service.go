package services

import (
	"errors"
	"fmt"
	"strings"

	"staybnb-backend/auth"
	"staybnb-backend/models"

	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// ErrInvalidCredentials is kept distinct from ErrNotFound so login can report
// an unknown email and a wrong password differently.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Register creates a user with a bcrypt hash in place of the raw password.
// A missing field or an already-registered email comes back as ErrValidation.
func (s *UserService) Register(name, username, phone, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if name == "" || username == "" || phone == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Username: username,
		Phone:    phone,
		Email:    email,
		Password: hash,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrValidation)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// Login looks the user up by email and checks the password against the stored
// hash. Unknown email yields ErrNotFound; a wrong password yields
// ErrInvalidCredentials.
func (s *UserService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// UpdateEmail changes the caller's email address and returns the updated user.
func (s *UserService) UpdateEmail(userID uint, newEmail string) (*models.User, error) {
	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(user).Update("email", newEmail).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrValidation)
		}
		return nil, fmt.Errorf("update email: %w", err)
	}

	user.Email = newEmail
	return user, nil
}
