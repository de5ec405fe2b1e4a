package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cms-backend/models"
)

// UserService owns registration, login and admin-flag management.
type UserService struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{db: db, bcryptCost: bcryptCost}
}

// Register creates a new user. Email and username must both be unused.
// The password is stored as a bcrypt hash, never in plaintext.
func (s *UserService) Register(email, username, password string, isAdmin bool) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
		IsAdmin:  isAdmin,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		// The unique indexes backstop the checks above under concurrent
		// registration.
		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The translated error does not say which index fired, and the
		// failed transaction cannot run further queries, so classify
		// against the committed state. Unscoped because the indexes also
		// cover soft-deleted rows.
		var count int64
		if e := s.db.Unscoped().Model(&models.User{}).Where("email = ?", email).Count(&count).Error; e == nil && count > 0 {
			return nil, ErrEmailTaken
		}
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Login returns the user iff the email exists and the password matches.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// bcrypt comparison is constant-time
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// FindAll returns all users
func (s *UserService) FindAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateAdminStatus sets the admin flag on an existing user
func (s *UserService) UpdateAdminStatus(userID uint, isAdmin bool) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsAdmin = isAdmin
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
