// Package dto defines data transfer objects for the properties feature's HTTP transport layer.
package dto

import "strings"

// CreatePropertyRequest is the request body for POST /api/properties.
// Validate tags are evaluated in order; the first failing rule per field is reported.
type CreatePropertyRequest struct {
	OwnerID   *uint    `json:"ownerId" validate:"required,gt=0,lte=2147483647"`
	Address   string   `json:"address" validate:"required,min=5,max=200"`
	City      string   `json:"city" validate:"required,min=2,max=100,person_name"`
	Province  string   `json:"province" validate:"required,min=2,max=100,person_name"`
	ZipCode   *string  `json:"zipCode" validate:"omitnil,zip4"`
	Latitude  *float64 `json:"latitude" validate:"omitnil,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitnil,gte=-180,lte=180"`
}

// Normalize trims surrounding whitespace before validation.
// The trimmed values are what gets persisted.
func (r *CreatePropertyRequest) Normalize() {
	r.Address = strings.TrimSpace(r.Address)
	r.City = strings.TrimSpace(r.City)
	r.Province = strings.TrimSpace(r.Province)
	if r.ZipCode != nil {
		z := strings.TrimSpace(*r.ZipCode)
		r.ZipCode = &z
	}
}

// UpdatePropertyRequest is the request body for PUT /api/properties/:id.
// All fields are optional; nil means "leave unchanged".
type UpdatePropertyRequest struct {
	OwnerID   *uint    `json:"ownerId" validate:"omitnil,gt=0,lte=2147483647"`
	Address   *string  `json:"address" validate:"omitnil,min=5,max=200"`
	City      *string  `json:"city" validate:"omitnil,min=2,max=100,person_name"`
	Province  *string  `json:"province" validate:"omitnil,min=2,max=100,person_name"`
	ZipCode   *string  `json:"zipCode" validate:"omitnil,zip4"`
	Latitude  *float64 `json:"latitude" validate:"omitnil,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitnil,gte=-180,lte=180"`
}

// Normalize trims surrounding whitespace on the fields that are present.
func (r *UpdatePropertyRequest) Normalize() {
	if r.Address != nil {
		a := strings.TrimSpace(*r.Address)
		r.Address = &a
	}
	if r.City != nil {
		c := strings.TrimSpace(*r.City)
		r.City = &c
	}
	if r.Province != nil {
		p := strings.TrimSpace(*r.Province)
		r.Province = &p
	}
	if r.ZipCode != nil {
		z := strings.TrimSpace(*r.ZipCode)
		r.ZipCode = &z
	}
}

// Empty reports whether no recognized field was supplied.
// Checked as a whole-object rule after the per-field rules.
func (r *UpdatePropertyRequest) Empty() bool {
	return r.OwnerID == nil && r.Address == nil && r.City == nil &&
		r.Province == nil && r.ZipCode == nil && r.Latitude == nil && r.Longitude == nil
}
