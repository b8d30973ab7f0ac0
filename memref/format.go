package memref

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
)

// Format holds the parameters shared by every reference in one addressing space. Offsets
// carried in references are scaled by the shifts before they address cells, which lets a
// reference reach further at the cost of coarser granularity.
type Format struct {
	// TableIndexBits is the number of low bits of a far reference that hold the table index
	TableIndexBits uint8
	// FarOffsetShift scales far reference offsets into cell offsets
	FarOffsetShift uint8
	// NearOffsetShift scales near reference offsets into cell offsets
	NearOffsetShift uint8
}

// Location is the position of a cell within an addressing space, in cell units
type Location struct {
	Table  uint64
	Offset uint64
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Table, l.Offset)
}

// Validate checks that the format can be used with single-width references
func (f Format) Validate() error {
	width := Bits[Ref]()
	if f.TableIndexBits >= width {
		return cerrors.Wrapf(ErrInvalidFormat, "%d table index bits leave no room in a %d-bit reference", f.TableIndexBits, width)
	}
	if f.FarOffsetShift >= 64 {
		return cerrors.Wrapf(ErrInvalidFormat, "far offset shift %d is too large", f.FarOffsetShift)
	}
	if f.NearOffsetShift >= 64 {
		return cerrors.Wrapf(ErrInvalidFormat, "near offset shift %d is too large", f.NearOffsetShift)
	}
	return nil
}

// TableCount returns the number of tables a far reference can select
func (f Format) TableCount() uint64 {
	return uint64(1) << f.TableIndexBits
}

// Near encodes a near reference to cellOffset, which must be a multiple of 2^NearOffsetShift
func (f Format) Near(cellOffset uint64) (Ref, error) {
	offset, err := unscale(cellOffset, f.NearOffsetShift)
	if err != nil {
		return 0, err
	}
	return EncodeNear(offset)
}

// Far encodes a far reference to cellOffset in table, where cellOffset must be a multiple of
// 2^FarOffsetShift
func (f Format) Far(cellOffset, table uint64) (Ref, error) {
	offset, err := unscale(cellOffset, f.FarOffsetShift)
	if err != nil {
		return 0, err
	}
	return EncodeFar(offset, table, f.TableIndexBits)
}

// Decode decodes ref with the format's table index width. Offsets are returned unscaled.
func (f Format) Decode(ref Ref) (Decoded, error) {
	return Decode(ref, f.TableIndexBits)
}

// Locate resolves ref to a cell location. Near references are measured from base, which is
// normally the start of the table holding the reference. Far references ignore base.
func (f Format) Locate(ref Ref, base Location) (Location, error) {
	decoded, err := f.Decode(ref)
	if err != nil {
		return Location{}, err
	}

	if decoded.Kind == KindNear {
		delta, err := scale(decoded.Offset, f.NearOffsetShift)
		if err != nil {
			return Location{}, err
		}
		offset := base.Offset + delta
		if offset < base.Offset {
			return Location{}, cerrors.Wrapf(ErrOffsetOverflow, "near offset %d from %s", delta, base)
		}
		return Location{Table: base.Table, Offset: offset}, nil
	}

	offset, err := scale(decoded.Offset, f.FarOffsetShift)
	if err != nil {
		return Location{}, err
	}
	return Location{Table: decoded.TableIndex, Offset: offset}, nil
}

func scale(offset uint64, shift uint8) (uint64, error) {
	if shift >= 64 || (offset<<shift)>>shift != offset {
		return 0, cerrors.Wrapf(ErrOffsetOverflow, "offset %d loses bits when shifted left by %d", offset, shift)
	}
	return offset << shift, nil
}

func unscale(cellOffset uint64, shift uint8) (uint64, error) {
	if shift >= 64 {
		return 0, cerrors.Wrapf(ErrInvalidFormat, "offset shift %d is too large", shift)
	}
	if cellOffset&((uint64(1)<<shift)-1) != 0 {
		return 0, cerrors.Wrapf(ErrUnalignedOffset, "offset %d with shift %d", cellOffset, shift)
	}
	return cellOffset >> shift, nil
}
