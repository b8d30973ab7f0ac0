//go:build !relmem_default_int64

package vector

// DefaultIntBits is the width in bits of the default integer types. It is 32 unless the
// module is built with the relmem_default_int64 tag.
const DefaultIntBits = 32

// Default integer types, resolved once per build. Every length switches width together.
type (
	Uint    = uint32
	UintV2  = V2[uint32]
	UintV3  = V3[uint32]
	UintV4  = V4[uint32]
	UintV8  = V8[uint32]
	UintV16 = V16[uint32]

	Sint    = int32
	SintV2  = V2[int32]
	SintV3  = V3[int32]
	SintV4  = V4[int32]
	SintV8  = V8[int32]
	SintV16 = V16[int32]
)
