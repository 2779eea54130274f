package models

import (
	"time"

	"github.com/lib/pq"
)

// CarListing is a row of the cars table.
type CarListing struct {
	ID             string         `gorm:"primaryKey;type:text" json:"id"`
	UserID         string         `gorm:"index;not null" json:"user_id"`
	Brand          string         `json:"brand"`
	Model          string         `json:"model"`
	Year           int            `json:"year"`
	Price          float64        `json:"price"`
	Mileage        *int           `json:"mileage"`
	FuelType       string         `json:"fuel_type"`
	Transmission   string         `json:"transmission"`
	EngineCapacity *int           `json:"engine_capacity"`
	Condition      string         `json:"condition"`
	BodyType       *string        `json:"body_type"`
	Assembly       *string        `json:"assembly"`
	Color          *string        `json:"color"`
	Location       string         `json:"location"`
	RegisteredIn   *string        `json:"registered_in"`
	OwnerName      string         `json:"owner_name"`
	OwnerPhone     string         `json:"owner_phone"`
	OwnerEmail     string         `json:"owner_email"`
	Images         pq.StringArray `gorm:"type:text[]" json:"images"`
	Description    *string        `json:"description"`
	Features       pq.StringArray `gorm:"type:text[]" json:"features"`
	IsSold         bool           `gorm:"default:false" json:"is_sold"`
	Views          *int           `gorm:"default:0" json:"views"`
	IsFeatured     bool           `gorm:"default:false" json:"is_featured"`
	IsVerified     bool           `gorm:"default:false" json:"is_verified"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      *time.Time     `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (CarListing) TableName() string { return "cars" }

// ViewCount treats a missing counter as zero.
func (c CarListing) ViewCount() int {
	if c.Views == nil {
		return 0
	}
	return *c.Views
}

// CarListingWithUser is a listing joined to its owner profile.
// User is nil when the owner profile no longer exists.
type CarListingWithUser struct {
	CarListing
	User *UserProfile `gorm:"-" json:"user"`
}
