// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Stores report infrastructure facts through the sentinel errors below;
// services translate them into domain errors.
package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an entity was not located.
	ErrNotFound = errors.New("repository: not found")

	// ErrConflict indicates a write was rejected by a uniqueness constraint.
	ErrConflict = errors.New("repository: conflict")

	// ErrEmailConflict is the ErrConflict raised by the users email index.
	ErrEmailConflict = fmt.Errorf("%w: email already registered", ErrConflict)
)
