package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/fixnear/fixnear-backend/models"
)

// BookingService wraps booking persistence and the status lifecycle.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create opens a PENDING booking against an existing user and provider,
// snapshotting the denormalized fields from their current state.
func (s *BookingService) Create(user *models.User, provider *models.Provider, description string, bookingDate *time.Time) (*models.Booking, error) {
	booking := models.Booking{
		UserID:       user.ID,
		UserName:     user.Name,
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Service:      provider.Service,
		Location:     provider.Location,
		Price:        provider.Price,
		Status:       models.StatusPending,
		Description:  description,
		BookingDate:  bookingDate,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) ByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) ByProvider(providerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Where("provider_id = ?", providerID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) ByStatus(status string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Where("status = ?", status).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus normalizes the raw status value and writes it. Any current
// status may be overwritten by any other; there is no transition table.
func (s *BookingService) UpdateStatus(id uint, rawStatus string) (*models.Booking, error) {
	status, err := models.NormalizeStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.SetStatus(id, status)
}

// SetStatus writes the status verbatim, bypassing normalization. Used by the
// admin status endpoint.
func (s *BookingService) SetStatus(id uint, status string) (*models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	booking.Status = status
	if err := s.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// AddReview records the rating and review text and forces the booking to
// COMPLETED regardless of its prior status. Repeating with the same values
// is a no-op beyond the timestamp.
func (s *BookingService) AddReview(id uint, rating float64, review string) (*models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	booking.Rating = rating
	booking.Review = review
	booking.Status = models.StatusCompleted
	if err := s.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel marks the booking CANCELLED. The record is kept; cancellation is a
// state transition, not a deletion.
func (s *BookingService) Cancel(id uint) (*models.Booking, error) {
	return s.SetStatus(id, models.StatusCancelled)
}

// ExpireOverdue cancels PENDING bookings whose booking date has already
// passed. Returns the cancelled bookings so callers can notify users.
func (s *BookingService) ExpireOverdue(now time.Time) ([]models.Booking, error) {
	var overdue []models.Booking
	err := s.DB.Where("status = ? AND booking_date IS NOT NULL AND booking_date < ?",
		models.StatusPending, now).Find(&overdue).Error
	if err != nil {
		return nil, err
	}

	for i := range overdue {
		overdue[i].Status = models.StatusCancelled
		if err := s.DB.Save(&overdue[i]).Error; err != nil {
			return nil, err
		}
	}
	return overdue, nil
}

// Upcoming returns accepted bookings starting within the window, for
// reminder mail.
func (s *BookingService) Upcoming(from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("status = ? AND booking_date BETWEEN ? AND ?",
		models.StatusAccepted, from, to).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
