package models

import "gorm.io/gorm"

// Availability declares a provider's weekly time window. It is stored
// alongside the other collections but no booking path reads it yet.
type Availability struct {
	gorm.Model
	ProviderID  uint   `json:"provider_id"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"` // "HH:MM" in 24h
	EndTime     string `json:"end_time"`   // "HH:MM" in 24h
	IsAvailable bool   `json:"is_available" gorm:"default:true"`
}
