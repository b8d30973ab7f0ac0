package space

import "github.com/pkg/errors"

// ErrTableInUse is returned when attaching a table at an index that already holds one
var ErrTableInUse error = errors.New("a table is already attached at this index")

// ErrNoTable is returned when a table index has nothing attached
var ErrNoTable error = errors.New("no table is attached at this index")

// ErrOutOfBounds is returned when a resolved location lies past the end of its table
var ErrOutOfBounds error = errors.New("location is outside the bounds of its table")

// ErrUnknownConfigKey is returned when a configuration file contains keys this package does not read
var ErrUnknownConfigKey error = errors.New("unknown configuration key")
