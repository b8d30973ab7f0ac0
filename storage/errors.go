package storage

import "github.com/pkg/errors"

// ErrNoSymbol is returned when an image has no symbol with the requested name
var ErrNoSymbol error = errors.New("symbol not found")

// ErrInvalidSymbol is returned when a symbol names a missing section or lies outside its section
var ErrInvalidSymbol error = errors.New("symbol does not address a cell in its section")

// ErrDuplicateName is returned when two sections, symbols or properties share a name
var ErrDuplicateName error = errors.New("name is used more than once")

// ErrMalformedImage is returned when a persisted image cannot be decoded
var ErrMalformedImage error = errors.New("malformed image")
