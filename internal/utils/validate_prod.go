//go:build !debug_relmem

package utils

// DebugEnabled reports whether the module was built with the debug_relmem build tag.
const DebugEnabled = false

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_relmem build tag is present
func DebugValidate(validatable Validatable) {
}

// DebugAssert panics with an assertion failure if cond is false. This method no-ops unless
// the debug_relmem build tag is present.
func DebugAssert(cond bool, format string, args ...any) {
}
