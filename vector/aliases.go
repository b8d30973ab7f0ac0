package vector

// Concrete vector types for every lane width and length.
type (
	Uint8V2  = V2[uint8]
	Uint8V3  = V3[uint8]
	Uint8V4  = V4[uint8]
	Uint8V8  = V8[uint8]
	Uint8V16 = V16[uint8]

	Uint16V2  = V2[uint16]
	Uint16V3  = V3[uint16]
	Uint16V4  = V4[uint16]
	Uint16V8  = V8[uint16]
	Uint16V16 = V16[uint16]

	Uint32V2  = V2[uint32]
	Uint32V3  = V3[uint32]
	Uint32V4  = V4[uint32]
	Uint32V8  = V8[uint32]
	Uint32V16 = V16[uint32]

	Uint64V2  = V2[uint64]
	Uint64V3  = V3[uint64]
	Uint64V4  = V4[uint64]
	Uint64V8  = V8[uint64]
	Uint64V16 = V16[uint64]

	Sint8V2  = V2[int8]
	Sint8V3  = V3[int8]
	Sint8V4  = V4[int8]
	Sint8V8  = V8[int8]
	Sint8V16 = V16[int8]

	Sint16V2  = V2[int16]
	Sint16V3  = V3[int16]
	Sint16V4  = V4[int16]
	Sint16V8  = V8[int16]
	Sint16V16 = V16[int16]

	Sint32V2  = V2[int32]
	Sint32V3  = V3[int32]
	Sint32V4  = V4[int32]
	Sint32V8  = V8[int32]
	Sint32V16 = V16[int32]

	Sint64V2  = V2[int64]
	Sint64V3  = V3[int64]
	Sint64V4  = V4[int64]
	Sint64V8  = V8[int64]
	Sint64V16 = V16[int64]

	Float32V2  = V2[float32]
	Float32V3  = V3[float32]
	Float32V4  = V4[float32]
	Float32V8  = V8[float32]
	Float32V16 = V16[float32]

	Float64V2  = V2[float64]
	Float64V3  = V3[float64]
	Float64V4  = V4[float64]
	Float64V8  = V8[float64]
	Float64V16 = V16[float64]
)
