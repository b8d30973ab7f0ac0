package vector

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/relmem/internal/utils"
)

// Type describes the device-side layout of a scalar (Length 1) or vector lane type. Sizes and
// alignments follow the OpenCL vector ABI: a vector is aligned to its own size, and a 3-vector
// is laid out as a 4-vector.
type Type struct {
	Lane   LaneKind
	Length int
}

// TypeOf returns the layout descriptor for a vector of length lanes of type T
func TypeOf[T Lane](length int) (Type, error) {
	t := Type{Lane: KindOf[T](), Length: length}
	if err := t.Validate(); err != nil {
		return Type{}, err
	}
	return t, nil
}

// Validate returns an error wrapping ErrInvalidLength if Length is not one of 1, 2, 3, 4, 8 or 16
func (t Type) Validate() error {
	switch t.Length {
	case 1, 2, 3, 4, 8, 16:
		return nil
	}
	return cerrors.Wrapf(ErrInvalidLength, "length %d", t.Length)
}

// StoredLanes returns the number of lanes physically occupied, including padding
func (t Type) StoredLanes() int {
	if t.Length == 3 {
		return 4
	}
	return t.Length
}

// Size returns the size in bytes of a value of this type
func (t Type) Size() int {
	return t.Lane.Size() * t.StoredLanes()
}

// Align returns the required alignment in bytes of a value of this type on the device. It is
// a multiple of the Go alignment of the matching vector type, which only follows the lane.
func (t Type) Align() int {
	return utils.NextPow2(t.Size())
}

func (t Type) String() string {
	if t.Length == 1 {
		return t.Lane.String()
	}
	return fmt.Sprintf("%sx%d", t.Lane, t.Length)
}

// AlignOffset rounds offset up to a multiple of alignment, which must be a power of two
func AlignOffset(offset, alignment int) (int, error) {
	err := utils.CheckPow2(uint(alignment), "alignment")
	if err != nil {
		return 0, err
	}
	return utils.AlignUp(offset, uint(alignment)), nil
}

// StructLayout places fields in order as the device compiler lays out a struct of them. It
// returns the byte offset of each field and the size of the struct, padded to the alignment of
// its most aligned field.
func StructLayout(fields ...Type) ([]int, int, error) {
	offsets := make([]int, len(fields))
	size := 0
	structAlign := 1

	for i, field := range fields {
		err := field.Validate()
		if err != nil {
			return nil, 0, cerrors.Wrapf(err, "field %d", i)
		}

		align := field.Align()
		if align > structAlign {
			structAlign = align
		}

		offsets[i], err = AlignOffset(size, align)
		if err != nil {
			return nil, 0, err
		}
		size = offsets[i] + field.Size()
	}

	size, err := AlignOffset(size, structAlign)
	if err != nil {
		return nil, 0, err
	}
	return offsets, size, nil
}
