// Package half converts between IEEE 754 single-precision floats and binary16 half-precision
// values. Half floats have no native lane type; cells and vectors carry them as plain uint16
// bit patterns until they are converted.
package half

import (
	"github.com/x448/float16"
)

const (
	// Zero is the bit pattern of positive zero
	Zero uint16 = 0x0000
	// One is the bit pattern of 1.0
	One uint16 = 0x3C00
	// Inf is the bit pattern of positive infinity
	Inf uint16 = 0x7C00
	// NegInf is the bit pattern of negative infinity
	NegInf uint16 = 0xFC00
	// NaN is the canonical quiet NaN bit pattern
	NaN uint16 = 0x7E00
)

// Float32ToFloat16 packs f into binary16 using round-to-nearest-even. Values too large for
// binary16 become infinities, values too small become signed zeros or subnormals, and a NaN
// stays a quiet NaN with its sign.
func Float32ToFloat16(f float32) uint16 {
	return float16.Fromfloat32(f).Bits()
}

// Float16ToFloat32 unpacks a binary16 bit pattern. Every binary16 value, subnormals included, is
// exactly representable as a float32.
func Float16ToFloat32(u uint16) float32 {
	return float16.Frombits(u).Float32()
}

// IsNaN reports whether u is a binary16 NaN
func IsNaN(u uint16) bool {
	return float16.Frombits(u).IsNaN()
}

// IsInf reports whether u is an infinity with the given sign: sign > 0 tests for positive
// infinity, sign < 0 for negative infinity, and 0 for either.
func IsInf(u uint16, sign int) bool {
	return float16.Frombits(u).IsInf(sign)
}

// Exact reports whether f survives a round trip through binary16 without loss. Subnormal
// results count as exact when no bits are dropped. NaN is never exact.
func Exact(f float32) bool {
	if f != f {
		return false
	}
	return float16.Fromfloat32(f).Float32() == f
}

func packLanes(dst []uint16, src []float32) {
	for i, f := range src {
		dst[i] = Float32ToFloat16(f)
	}
}

func unpackLanes(dst []float32, src []uint16) {
	for i, u := range src {
		dst[i] = Float16ToFloat32(u)
	}
}
