// Package services implements the persistence layer over the Ent client.
package services

import "errors"

var (
	// ErrNotFound is returned when an entity is not visible under the
	// owner scope.
	ErrNotFound = errors.New("entity not found")
)
