package services

import (
	"gorm.io/gorm"

	"github.com/fixnear/fixnear-backend/models"
)

// UserService wraps user persistence. One instance is constructed at startup
// and shared by the handlers.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *UserService) Create(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile replaces the user's name and email.
func (s *UserService) UpdateProfile(id uint, name, email string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Email = email
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetEnabled toggles the account on or off without deleting it.
func (s *UserService) SetEnabled(id uint, enabled bool) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Enabled = enabled
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	return s.DB.Delete(&models.User{}, id).Error
}

// HasRole reports whether the user carries the given role tag. Unknown
// users have no roles.
func (s *UserService) HasRole(id uint, role string) bool {
	user, err := s.GetByID(id)
	if err != nil {
		return false
	}
	return user.Roles.Contains(role)
}
