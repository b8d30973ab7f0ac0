//go:build relmem_default_int64

package vector

// DefaultIntBits is the width in bits of the default integer types. This file is selected by
// the relmem_default_int64 build tag.
const DefaultIntBits = 64

// Default integer types, resolved once per build. Every length switches width together.
type (
	Uint    = uint64
	UintV2  = V2[uint64]
	UintV3  = V3[uint64]
	UintV4  = V4[uint64]
	UintV8  = V8[uint64]
	UintV16 = V16[uint64]

	Sint    = int64
	SintV2  = V2[int64]
	SintV3  = V3[int64]
	SintV4  = V4[int64]
	SintV8  = V8[int64]
	SintV16 = V16[int64]
)
