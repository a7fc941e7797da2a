package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/fixnear/fixnear-backend/models"
)

// ProviderService wraps provider persistence and the search queries.
type ProviderService struct {
	DB *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{DB: db}
}

func (s *ProviderService) List() ([]models.Provider, error) {
	var providers []models.Provider
	if err := s.DB.Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *ProviderService) GetByID(id uint) (*models.Provider, error) {
	var provider models.Provider
	if err := s.DB.First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (s *ProviderService) GetByUserID(userID uint) (*models.Provider, error) {
	var provider models.Provider
	if err := s.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// Search filters by service and/or location, both case-insensitive exact
// matches. Blank filters are ignored; with neither set the full listing is
// returned.
func (s *ProviderService) Search(service, location string) ([]models.Provider, error) {
	query := s.DB.Model(&models.Provider{})
	if strings.TrimSpace(service) != "" {
		query = query.Where("LOWER(service) = LOWER(?)", strings.TrimSpace(service))
	}
	if strings.TrimSpace(location) != "" {
		query = query.Where("LOWER(location) = LOWER(?)", strings.TrimSpace(location))
	}

	var providers []models.Provider
	if err := query.Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *ProviderService) ByLocation(location string) ([]models.Provider, error) {
	var providers []models.Provider
	err := s.DB.Where("LOWER(location) = LOWER(?)", location).Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *ProviderService) Available() ([]models.Provider, error) {
	var providers []models.Provider
	if err := s.DB.Where("available = ?", true).Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *ProviderService) Create(provider *models.Provider) error {
	return s.DB.Create(provider).Error
}

// Update overwrites the provider's profile fields. A zero UserID in the
// input leaves the existing account link untouched.
func (s *ProviderService) Update(id uint, in *models.Provider) (*models.Provider, error) {
	provider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	provider.Name = in.Name
	provider.Service = in.Service
	provider.Location = in.Location
	provider.Available = in.Available
	if in.UserID != 0 {
		provider.UserID = in.UserID
	}
	provider.WorkingHours = in.WorkingHours
	provider.Price = in.Price
	if err := s.DB.Save(provider).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

func (s *ProviderService) SetAvailable(id uint, available bool) (*models.Provider, error) {
	provider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	provider.Available = available
	if err := s.DB.Save(provider).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

// UpdateRating overwrites the provider's rating. The value is taken as-is;
// nothing aggregates booking reviews into this field automatically.
func (s *ProviderService) UpdateRating(id uint, rating float64) (*models.Provider, error) {
	provider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	provider.Rating = rating
	if err := s.DB.Save(provider).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

func (s *ProviderService) SetImageURL(id uint, url string) (*models.Provider, error) {
	provider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	provider.ImageURL = url
	if err := s.DB.Save(provider).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

func (s *ProviderService) Delete(id uint) error {
	return s.DB.Delete(&models.Provider{}, id).Error
}
