package db

import "errors"

var (
	// ErrTargetNotFound is returned when the query district is not in the store
	ErrTargetNotFound = errors.New("target district not found")

	// ErrMissingColumn is returned when a source table lacks a required column
	ErrMissingColumn = errors.New("required column missing")

	// ErrLengthMismatch is returned when vectors passed to a distance function differ in length
	ErrLengthMismatch = errors.New("vector lengths do not match")

	// ErrEmptyVector is returned when a distance is requested over zero elements
	ErrEmptyVector = errors.New("vector is empty")
)
