package half

import "github.com/vkngwrapper/relmem/vector"

func Float32ToFloat16V2(v vector.V2[float32]) vector.V2[uint16] {
	var result vector.V2[uint16]
	packLanes(result[:], v[:])
	return result
}

func Float16ToFloat32V2(v vector.V2[uint16]) vector.V2[float32] {
	var result vector.V2[float32]
	unpackLanes(result[:], v[:])
	return result
}

func Float32ToFloat16V3(v vector.V3[float32]) vector.V3[uint16] {
	var result vector.V3[uint16]
	packLanes(result[:3], v[:3])
	return result
}

func Float16ToFloat32V3(v vector.V3[uint16]) vector.V3[float32] {
	var result vector.V3[float32]
	unpackLanes(result[:3], v[:3])
	return result
}

func Float32ToFloat16V4(v vector.V4[float32]) vector.V4[uint16] {
	var result vector.V4[uint16]
	packLanes(result[:], v[:])
	return result
}

func Float16ToFloat32V4(v vector.V4[uint16]) vector.V4[float32] {
	var result vector.V4[float32]
	unpackLanes(result[:], v[:])
	return result
}

func Float32ToFloat16V8(v vector.V8[float32]) vector.V8[uint16] {
	var result vector.V8[uint16]
	packLanes(result[:], v[:])
	return result
}

func Float16ToFloat32V8(v vector.V8[uint16]) vector.V8[float32] {
	var result vector.V8[float32]
	unpackLanes(result[:], v[:])
	return result
}

func Float32ToFloat16V16(v vector.V16[float32]) vector.V16[uint16] {
	var result vector.V16[uint16]
	packLanes(result[:], v[:])
	return result
}

func Float16ToFloat32V16(v vector.V16[uint16]) vector.V16[float32] {
	var result vector.V16[float32]
	unpackLanes(result[:], v[:])
	return result
}
