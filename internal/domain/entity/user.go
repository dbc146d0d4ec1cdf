// Package entity defines the domain entities shared by the users and properties features.
package entity

import "time"

// User represents a property owner registered in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:100;not null" json:"email"`

	// Name is the user's display name.
	Name string `gorm:"size:100;not null" json:"name"`

	// Phone is the user's mobile number. Nullable.
	Phone *string `gorm:"size:20" json:"phone"`

	// Properties are the properties owned by this user.
	Properties []Property `gorm:"foreignKey:OwnerID" json:"properties,omitempty"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
