package entity

import "time"

// Listing is a market listing attached to a property.
// Listings are read-only in this API; they are only loaded alongside properties.
type Listing struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"propertyId"`
	Price      float64   `json:"price"`
	Status     string    `gorm:"size:50" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
