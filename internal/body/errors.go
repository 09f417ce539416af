package body

import "errors"

var (
	// ErrNonPositiveMass is returned for bodies with mass <= 0.
	ErrNonPositiveMass = errors.New("body: mass must be positive")

	// ErrDuplicateID is returned when inserting an id already present.
	ErrDuplicateID = errors.New("body: duplicate id")

	// ErrUnknownBody is returned when looking up an id never inserted.
	ErrUnknownBody = errors.New("body: unknown id")
)
