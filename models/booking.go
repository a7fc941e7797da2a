package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking links one user to one provider. UserName, ProviderName, Service,
// Location and Price are snapshotted from the user and provider rows at
// creation time and are never refreshed afterwards: a booking is a
// point-in-time record, not a live reference.
type Booking struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id"`
	UserName     string     `json:"user_name"`
	ProviderID   uint       `json:"provider_id"`
	ProviderName string     `json:"provider_name"`
	Service      string     `json:"service"`
	Location     string     `json:"location"`
	Price        float64    `json:"price"`
	Status       string     `json:"status"`
	Description  string     `json:"description"`
	BookingDate  *time.Time `json:"booking_date"`
	Rating       float64    `json:"rating"`
	Review       string     `json:"review"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}
