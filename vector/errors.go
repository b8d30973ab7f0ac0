package vector

import "github.com/pkg/errors"

var (
	// ErrArityMismatch is returned when a vector is constructed from the wrong number of lanes
	ErrArityMismatch error = errors.New("wrong number of vector components")
	// ErrUnknownComponent is returned when a component name does not address a lane of the vector
	ErrUnknownComponent error = errors.New("unknown vector component")
	// ErrInvalidLength is returned when a vector layout is requested for a length other than 1, 2, 3, 4, 8 or 16
	ErrInvalidLength error = errors.New("invalid vector length")
)
