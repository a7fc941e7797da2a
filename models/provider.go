package models

import "time"

// Provider is a service-offering record. UserID links the provider to an
// owning user account; zero means unlinked.
type Provider struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Service      string    `json:"service"`
	UserID       uint      `json:"user_id"`
	Location     string    `json:"location"`
	Available    bool      `json:"available"`
	WorkingHours string    `json:"working_hours"`
	Rating       float64   `json:"rating"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
