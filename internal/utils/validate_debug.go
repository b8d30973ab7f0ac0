//go:build debug_relmem

package utils

import (
	cerrors "github.com/cockroachdb/errors"
)

// DebugEnabled reports whether the module was built with the debug_relmem build tag.
const DebugEnabled = true

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_relmem build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugAssert panics with an assertion failure if cond is false. This method no-ops unless
// the debug_relmem build tag is present.
func DebugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(cerrors.AssertionFailedf(format, args...))
	}
}
