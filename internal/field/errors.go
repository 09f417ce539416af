package field

import "errors"

var (
	// ErrNonPositiveG is returned for gravitational constants <= 0.
	ErrNonPositiveG = errors.New("field: gravitational constant must be positive")

	// ErrNonPositiveSolarMass is returned for central masses <= 0.
	ErrNonPositiveSolarMass = errors.New("field: solar mass must be positive")

	// ErrDistanceBounds is returned unless 0 < min < max.
	ErrDistanceBounds = errors.New("field: distance bounds must satisfy 0 < min < max")

	// ErrInvalidTimestep is returned for timesteps <= 0.
	ErrInvalidTimestep = errors.New("field: timestep must be positive")
)
