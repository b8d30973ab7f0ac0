//go:build !relmem_default_float64

package vector

// DefaultFloatBits is the width in bits of the default floating-point types. It is 32 unless
// the module is built with the relmem_default_float64 tag.
const DefaultFloatBits = 32

// Default floating-point types, resolved once per build.
type (
	Float    = float32
	FloatV2  = V2[float32]
	FloatV3  = V3[float32]
	FloatV4  = V4[float32]
	FloatV8  = V8[float32]
	FloatV16 = V16[float32]
)
