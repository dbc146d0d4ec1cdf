// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists with the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when another user already owns the given email address.
	ErrEmailTaken = errors.New("email already in use")
)
