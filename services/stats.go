package services

import (
	"gorm.io/gorm"

	"github.com/fixnear/fixnear-backend/models"
)

// StatsService computes the admin dashboard and analytics aggregates.
// Every call recomputes from the live tables; nothing is cached.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type Dashboard struct {
	TotalUsers            int64   `json:"totalUsers"`
	TotalProviders        int64   `json:"totalProviders"`
	TotalBookings         int64   `json:"totalBookings"`
	CompletedBookings     int64   `json:"completedBookings"`
	PendingBookings       int64   `json:"pendingBookings"`
	ConfirmedBookings     int64   `json:"confirmedBookings"`
	AverageProviderRating float64 `json:"averageProviderRating"`
	ActiveProviders       int64   `json:"activeProviders"`
}

func (s *StatsService) Dashboard() (*Dashboard, error) {
	var d Dashboard

	if err := s.DB.Model(&models.User{}).Count(&d.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Provider{}).Count(&d.TotalProviders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Booking{}).Count(&d.TotalBookings).Error; err != nil {
		return nil, err
	}

	s.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCompleted).Count(&d.CompletedBookings)
	s.DB.Model(&models.Booking{}).Where("status = ?", models.StatusPending).Count(&d.PendingBookings)
	s.DB.Model(&models.Booking{}).Where("status = ?", models.StatusConfirmed).Count(&d.ConfirmedBookings)

	d.AverageProviderRating = s.averageProviderRating()
	s.DB.Model(&models.Provider{}).Where("available = ?", true).Count(&d.ActiveProviders)

	return &d, nil
}

type Analytics struct {
	TotalUsers         int64            `json:"totalUsers"`
	EnabledUsers       int64            `json:"enabledUsers"`
	DisabledUsers      int64            `json:"disabledUsers"`
	TotalProviders     int64            `json:"totalProviders"`
	AvailableProviders int64            `json:"availableProviders"`
	TotalBookings      int64            `json:"totalBookings"`
	CompletedBookings  int64            `json:"completedBookings"`
	CancelledBookings  int64            `json:"cancelledBookings"`
	ServiceBreakdown   map[string]int64 `json:"serviceBreakdown"`
}

func (s *StatsService) Analytics() (*Analytics, error) {
	var a Analytics

	if err := s.DB.Model(&models.User{}).Count(&a.TotalUsers).Error; err != nil {
		return nil, err
	}
	s.DB.Model(&models.User{}).Where("enabled = ?", true).Count(&a.EnabledUsers)
	a.DisabledUsers = a.TotalUsers - a.EnabledUsers

	s.DB.Model(&models.Provider{}).Count(&a.TotalProviders)
	s.DB.Model(&models.Provider{}).Where("available = ?", true).Count(&a.AvailableProviders)

	s.DB.Model(&models.Booking{}).Count(&a.TotalBookings)
	s.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCompleted).Count(&a.CompletedBookings)
	s.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCancelled).Count(&a.CancelledBookings)

	a.ServiceBreakdown = map[string]int64{}
	var rows []struct {
		Service string
		Count   int64
	}
	err := s.DB.Model(&models.Provider{}).
		Select("service, COUNT(*) as count").
		Group("service").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		a.ServiceBreakdown[row.Service] = row.Count
	}

	return &a, nil
}

// averageProviderRating is the arithmetic mean over all providers, 0.0 when
// there are none.
func (s *StatsService) averageProviderRating() float64 {
	var result struct {
		Avg *float64
	}
	s.DB.Model(&models.Provider{}).Select("AVG(rating) as avg").Scan(&result)
	if result.Avg == nil {
		return 0.0
	}
	return *result.Avg
}
