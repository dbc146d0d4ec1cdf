package entity

import "time"

// Property represents a real-estate record owned by a single user.
type Property struct {
	// ID is the unique identifier for the property.
	ID uint `gorm:"primaryKey" json:"id"`

	// OwnerID references the owning User.
	// Checked against the users table at create/update time.
	OwnerID uint `gorm:"index;not null" json:"ownerId"`

	// Address is the street address of the property.
	Address string `gorm:"size:200;not null" json:"address"`

	// City is the city the property is located in.
	City string `gorm:"size:100;not null" json:"city"`

	// Province is the province the property is located in.
	Province string `gorm:"size:100;not null" json:"province"`

	// ZipCode is the 4-digit postal code. Nullable.
	ZipCode *string `gorm:"size:10" json:"zipCode"`

	// Latitude is the geographic latitude in degrees. Nullable.
	Latitude *float64 `json:"latitude"`

	// Longitude is the geographic longitude in degrees. Nullable.
	Longitude *float64 `json:"longitude"`

	// Owner is the owning user, loaded eagerly where the API embeds it.
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	// Listings are the market listings published for this property.
	Listings []Listing `gorm:"foreignKey:PropertyID" json:"listings,omitempty"`

	// CreatedAt is the timestamp when the property was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the property was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
