package cell

import "github.com/pkg/errors"

// ErrPartialUnit is returned when a byte buffer does not hold a whole number of units
var ErrPartialUnit error = errors.New("buffer length is not a multiple of the unit size")
