package memref

import "github.com/pkg/errors"

// ErrZeroOffset is returned when a near reference is requested with offset 0. Offset 0 is
// reserved and never representable as a near reference.
var ErrZeroOffset error = errors.New("near references cannot address offset 0")

// ErrOffsetOverflow is returned when an offset, alone or packed with a table index, does not fit
// the reference width in use
var ErrOffsetOverflow error = errors.New("offset exceeds the representable range")

// ErrTableIndexOutOfRange is returned when a table index does not fit in the table index bits
var ErrTableIndexOutOfRange error = errors.New("table index out of range")

// ErrInvalidFormat is returned when the table index width or a shift cannot be used with the
// reference width
var ErrInvalidFormat error = errors.New("invalid reference format")

// ErrUnalignedOffset is returned when an offset cannot be expressed after applying a format's shift
var ErrUnalignedOffset error = errors.New("offset is not aligned to the format's offset shift")
