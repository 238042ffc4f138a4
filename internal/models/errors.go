package models

import "errors"

var (
	// ErrGeneral is returned when the database failed in a way we cannot
	// explain to the requester.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped by all "no such row" errors so that
	// callers can match them with errors.Is.
	ErrResourceNotFound = errors.New("there is no")
)
