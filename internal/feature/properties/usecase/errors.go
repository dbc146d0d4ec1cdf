// Package usecase implements the business logic for the properties feature.
package usecase

import "errors"

var (
	// ErrPropertyNotFound is returned when no property exists with the given ID.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrOwnerNotFound is returned when the referenced owner does not exist
	// at create time or when changing ownership.
	ErrOwnerNotFound = errors.New("owner not found")
)
