// Package cell defines the fixed-width storage cells that tables, message buffers and device
// staging areas are built from. A Unit is four bytes and can be viewed in place as any numeric
// type of equal or narrower width. No view carries a tag: reading a cell with the same
// interpretation it was written with is the caller's responsibility.
package cell

import (
	"math"
	"unsafe"

	"github.com/vkngwrapper/relmem/half"
	"github.com/vkngwrapper/relmem/vector"
)

// Width-relative names for the lane types. A single-width value fills a Unit exactly.
type (
	UintQuarter = uint8
	UintHalf    = uint16
	UintSingle  = uint32
	UintDouble  = uint64

	SintQuarter = int8
	SintHalf    = int16
	SintSingle  = int32
	SintDouble  = int64

	FloatSingle = float32
	FloatDouble = float64
)

const (
	// UnitSize is the size in bytes of a Unit
	UnitSize = 4
	// DoubleUnitSize is the size in bytes of a DoubleUnit
	DoubleUnitSize = 2 * UnitSize
)

// Unit is a single-width storage cell. Its size and alignment are those of a uint32.
type Unit struct {
	word UintSingle
}

func FromUint(value UintSingle) Unit { return Unit{word: value} }
func FromSint(value SintSingle) Unit { return Unit{word: UintSingle(value)} }
func FromFloat(value FloatSingle) Unit { return Unit{word: math.Float32bits(value)} }

func (u Unit) Uint() UintSingle { return u.word }
func (u *Unit) SetUint(value UintSingle) { u.word = value }

func (u Unit) Sint() SintSingle { return SintSingle(u.word) }
func (u *Unit) SetSint(value SintSingle) { u.word = UintSingle(value) }

func (u Unit) Float() FloatSingle { return math.Float32frombits(u.word) }
func (u *Unit) SetFloat(value FloatSingle) { u.word = math.Float32bits(value) }

// Bytes views the cell as its raw bytes in host order
func (u *Unit) Bytes() *[UnitSize]byte { return (*[UnitSize]byte)(unsafe.Pointer(u)) }

// The views below alias the cell's storage: a write through any of them is visible through
// every other view of the same cell. Lane order within the cell follows host byte order.

func (u *Unit) UintHalf() *[2]UintHalf { return (*[2]UintHalf)(unsafe.Pointer(u)) }
func (u *Unit) UintHalfV2() *vector.V2[UintHalf] {
	return (*vector.V2[UintHalf])(unsafe.Pointer(u))
}

func (u *Unit) UintQuarter() *[4]UintQuarter { return (*[4]UintQuarter)(unsafe.Pointer(u)) }
func (u *Unit) UintQuarterV2() *[2]vector.V2[UintQuarter] {
	return (*[2]vector.V2[UintQuarter])(unsafe.Pointer(u))
}
func (u *Unit) UintQuarterV4() *vector.V4[UintQuarter] {
	return (*vector.V4[UintQuarter])(unsafe.Pointer(u))
}

func (u *Unit) SintHalf() *[2]SintHalf { return (*[2]SintHalf)(unsafe.Pointer(u)) }
func (u *Unit) SintHalfV2() *vector.V2[SintHalf] {
	return (*vector.V2[SintHalf])(unsafe.Pointer(u))
}

func (u *Unit) SintQuarter() *[4]SintQuarter { return (*[4]SintQuarter)(unsafe.Pointer(u)) }
func (u *Unit) SintQuarterV2() *[2]vector.V2[SintQuarter] {
	return (*[2]vector.V2[SintQuarter])(unsafe.Pointer(u))
}
func (u *Unit) SintQuarterV4() *vector.V4[SintQuarter] {
	return (*vector.V4[SintQuarter])(unsafe.Pointer(u))
}

// FloatHalf views the cell as two binary16 values held as raw bit patterns
func (u *Unit) FloatHalf() *[2]UintHalf { return u.UintHalf() }

// FloatHalfV2 views the cell as a 2-vector of binary16 bit patterns
func (u *Unit) FloatHalfV2() *vector.V2[UintHalf] { return u.UintHalfV2() }

// HalfFloat decodes half-float lane i (0 or 1)
func (u *Unit) HalfFloat(i int) float32 {
	return half.Float16ToFloat32(u.FloatHalf()[i])
}

// SetHalfFloat encodes value into half-float lane i (0 or 1) with round-to-nearest-even
func (u *Unit) SetHalfFloat(i int, value float32) {
	u.FloatHalf()[i] = half.Float32ToFloat16(value)
}

// DoubleUnit is two contiguous Units viewed as one double-width value. It has the size and
// alignment of a uint64.
type DoubleUnit struct {
	word UintDouble
}

func DoubleFromUint(value UintDouble) DoubleUnit { return DoubleUnit{word: value} }
func DoubleFromSint(value SintDouble) DoubleUnit { return DoubleUnit{word: UintDouble(value)} }
func DoubleFromFloat(value FloatDouble) DoubleUnit { return DoubleUnit{word: math.Float64bits(value)} }

// DoubleFromUnits pairs two cells in memory order
func DoubleFromUnits(first, second Unit) DoubleUnit {
	var d DoubleUnit
	units := d.Units()
	units[0], units[1] = first, second
	return d
}

func (d DoubleUnit) Uint() UintDouble { return d.word }
func (d *DoubleUnit) SetUint(value UintDouble) { d.word = value }

func (d DoubleUnit) Sint() SintDouble { return SintDouble(d.word) }
func (d *DoubleUnit) SetSint(value SintDouble) { d.word = UintDouble(value) }

func (d DoubleUnit) Float() FloatDouble { return math.Float64frombits(d.word) }
func (d *DoubleUnit) SetFloat(value FloatDouble) { d.word = math.Float64bits(value) }

// Units views the double cell as its two single cells in memory order
func (d *DoubleUnit) Units() *[2]Unit { return (*[2]Unit)(unsafe.Pointer(d)) }
