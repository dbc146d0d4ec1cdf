// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import "strings"

// CreateUserRequest is the request body for POST /api/users.
// Validate tags are evaluated in order; the first failing rule per field is reported.
type CreateUserRequest struct {
	Email string  `json:"email" validate:"required,email_format,min=5,max=100"`
	Name  string  `json:"name" validate:"required,min=2,max=100,person_name"`
	Phone *string `json:"phone" validate:"omitnil,ph_mobile"`
}

// Normalize trims surrounding whitespace before validation.
// The trimmed values are what gets persisted.
func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		r.Phone = &p
	}
}

// UpdateUserRequest is the request body for PUT /api/users/:id.
// All fields are optional; nil means "leave unchanged".
type UpdateUserRequest struct {
	Email *string `json:"email" validate:"omitnil,email_format,min=5,max=100"`
	Name  *string `json:"name" validate:"omitnil,min=2,max=100,person_name"`
	Phone *string `json:"phone" validate:"omitnil,ph_mobile"`
}

// Normalize trims surrounding whitespace on the fields that are present.
func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		e := strings.TrimSpace(*r.Email)
		r.Email = &e
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		r.Phone = &p
	}
}

// Empty reports whether no recognized field was supplied.
// Checked as a whole-object rule after the per-field rules.
func (r *UpdateUserRequest) Empty() bool {
	return r.Email == nil && r.Name == nil && r.Phone == nil
}
