// Package memref encodes references to storage cells as single signed integers. A reference is
// either near, addressing a cell in the same table as the reference itself, or far, addressing a
// cell in an explicitly numbered table. The sign bit alone tells the two apart: near references
// are strictly negative and hold the negated offset, far references are non-negative and pack the
// table index into their low bits beneath the offset.
//
// The number of table index bits is a property of the addressing space rather than of any one
// reference, so it must be passed to every encode and decode call unchanged.
package memref

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/relmem/internal/utils"
)

// Ref is a single-width reference. It occupies exactly one cell.
type Ref int32

// RefHalf is a half-width reference, stored in a half lane of a cell
type RefHalf int16

// RefQuarter is a quarter-width reference, stored in a quarter lane of a cell
type RefQuarter int8

// Signed is satisfied by every reference width
type Signed interface {
	~int8 | ~int16 | ~int32
}

func (r Ref) IsNear() bool { return r < 0 }
func (r Ref) IsFar() bool  { return r >= 0 }

func (r RefHalf) IsNear() bool { return r < 0 }
func (r RefHalf) IsFar() bool  { return r >= 0 }

func (r RefQuarter) IsNear() bool { return r < 0 }
func (r RefQuarter) IsFar() bool  { return r >= 0 }

// Kind identifies the addressing mode of a decoded reference
type Kind uint8

const (
	KindNear Kind = iota
	KindFar
)

var kindMapping = map[Kind]string{
	KindNear: "Near",
	KindFar:  "Far",
}

func (k Kind) String() string {
	return kindMapping[k]
}

// Decoded is the result of decoding a reference. TableIndex is always 0 for near references.
type Decoded struct {
	Kind       Kind
	Offset     uint64
	TableIndex uint64
}

// Near returns the decoded form of a near reference to offset
func Near(offset uint64) Decoded {
	return Decoded{Kind: KindNear, Offset: offset}
}

// Far returns the decoded form of a far reference to offset in table tableIndex
func Far(offset, tableIndex uint64) Decoded {
	return Decoded{Kind: KindFar, Offset: offset, TableIndex: tableIndex}
}

func (d Decoded) String() string {
	if d.Kind == KindNear {
		return fmt.Sprintf("Near{%d}", d.Offset)
	}
	return fmt.Sprintf("Far{%d, %d}", d.Offset, d.TableIndex)
}

// WriteJSON writes the decoded reference's fields into an open JSON object
func (d Decoded) WriteJSON(json *jwriter.ObjectState) {
	json.Name("Kind").String(d.Kind.String())
	writeUint(json.Name("Offset"), d.Offset)
	if d.Kind == KindFar {
		writeUint(json.Name("TableIndex"), d.TableIndex)
	}
}

func writeUint(writer *jwriter.Writer, value uint64) {
	if value <= math.MaxInt {
		writer.Int(int(value))
		return
	}
	writer.String(strconv.FormatUint(value, 10))
}

// Bits returns the width in bits of the reference type R
func Bits[R Signed]() uint8 {
	var ref R
	return uint8(unsafe.Sizeof(ref) * 8)
}

// MaxNearOffset returns the largest offset a near reference of type R can hold. Near references
// use the full negative range, so this is one more than the largest positive value of R.
func MaxNearOffset[R Signed]() uint64 {
	return uint64(1) << (Bits[R]() - 1)
}

// MaxFarOffset returns the largest offset a far reference of type R can hold alongside a table
// index of numTidxBits bits
func MaxFarOffset[R Signed](numTidxBits uint8) (uint64, error) {
	width := Bits[R]()
	if numTidxBits >= width {
		return 0, cerrors.Wrapf(ErrInvalidFormat, "%d table index bits leave no room in a %d-bit reference", numTidxBits, width)
	}
	return (uint64(1) << (width - 1 - numTidxBits)) - 1, nil
}

// NearOf encodes a near reference of type R to offset
func NearOf[R Signed](offset uint64) (R, error) {
	if offset == 0 {
		return 0, ErrZeroOffset
	}

	maxOffset := MaxNearOffset[R]()
	if offset > maxOffset {
		return 0, cerrors.Wrapf(ErrOffsetOverflow, "near offset %d is greater than the maximum of %d for %d-bit references", offset, maxOffset, Bits[R]())
	}

	// The largest offset negates to the minimum value of R, which the conversion wraps correctly
	ref := R(-int64(offset))
	if utils.DebugEnabled {
		decoded, err := DecodeOf(ref, 0)
		utils.DebugAssert(err == nil && decoded == Near(offset), "near reference %d did not decode to offset %d", ref, offset)
	}
	return ref, nil
}

// FarOf encodes a far reference of type R to offset within table tableIndex. numTidxBits must be
// the table index width of the addressing space and less than the width of R.
func FarOf[R Signed](offset, tableIndex uint64, numTidxBits uint8) (R, error) {
	maxOffset, err := MaxFarOffset[R](numTidxBits)
	if err != nil {
		return 0, err
	}

	tableCount := uint64(1) << numTidxBits
	if tableIndex >= tableCount {
		return 0, cerrors.Wrapf(ErrTableIndexOutOfRange, "table index %d does not fit in %d bits", tableIndex, numTidxBits)
	}

	if offset > maxOffset {
		return 0, cerrors.Wrapf(ErrOffsetOverflow, "far offset %d is greater than the maximum of %d with %d table index bits", offset, maxOffset, numTidxBits)
	}

	ref := R((offset << numTidxBits) | tableIndex)
	if utils.DebugEnabled {
		decoded, err := DecodeOf(ref, numTidxBits)
		utils.DebugAssert(err == nil && decoded == Far(offset, tableIndex), "far reference %d did not decode to offset %d in table %d", ref, offset, tableIndex)
	}
	return ref, nil
}

// DecodeOf decodes ref using the addressing space's table index width. The sign of ref is the
// only discriminant between near and far references.
func DecodeOf[R Signed](ref R, numTidxBits uint8) (Decoded, error) {
	width := Bits[R]()
	if numTidxBits >= width {
		return Decoded{}, cerrors.Wrapf(ErrInvalidFormat, "%d table index bits leave no room in a %d-bit reference", numTidxBits, width)
	}

	if ref < 0 {
		return Near(uint64(-int64(ref))), nil
	}

	packed := uint64(ref)
	mask := (uint64(1) << numTidxBits) - 1
	return Far(packed>>numTidxBits, packed&mask), nil
}

// EncodeNear encodes a single-width near reference. offset must be between 1 and 2^31.
func EncodeNear(offset uint64) (Ref, error) {
	return NearOf[Ref](offset)
}

// EncodeFar encodes a single-width far reference
func EncodeFar(offset, tableIndex uint64, numTidxBits uint8) (Ref, error) {
	return FarOf[Ref](offset, tableIndex, numTidxBits)
}

// Decode decodes a single-width reference
func Decode(ref Ref, numTidxBits uint8) (Decoded, error) {
	return DecodeOf(ref, numTidxBits)
}
