//go:build relmem_default_float64

package vector

// DefaultFloatBits is the width in bits of the default floating-point types. This file is
// selected by the relmem_default_float64 build tag.
const DefaultFloatBits = 64

// Default floating-point types, resolved once per build.
type (
	Float    = float64
	FloatV2  = V2[float64]
	FloatV3  = V3[float64]
	FloatV4  = V4[float64]
	FloatV8  = V8[float64]
	FloatV16 = V16[float64]
)
