package cell

import (
	"encoding/binary"
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/relmem/half"
	"github.com/vkngwrapper/relmem/internal/utils"
	"github.com/vkngwrapper/relmem/vector"
	"golang.org/x/sys/cpu"
)

// UnitsFor returns the number of Units needed to hold size bytes
func UnitsFor(size int) int {
	return utils.DivRoundUp(size, UnitSize)
}

// UnitsOf returns the number of Units needed to hold a value of type T
func UnitsOf[T any]() int {
	var value T
	return UnitsFor(int(unsafe.Sizeof(value)))
}

// AsBytes views mem as bytes in host order without copying
func AsBytes(mem []Unit) []byte {
	if len(mem) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&mem[0])), len(mem)*UnitSize)
}

// Read copies a value of type T out of mem starting at byteOffset. T must be a fixed-size type
// that holds no pointers, such as a lane or vector type. byteOffset does not need to be
// aligned. Reading past the end of mem panics, as slice indexing does.
func Read[T any](mem []Unit, byteOffset int) T {
	var value T
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	copy(dst, AsBytes(mem)[byteOffset:byteOffset+len(dst)])
	return value
}

// Write copies value into mem starting at byteOffset. The same restrictions as Read apply.
func Write[T any](mem []Unit, byteOffset int, value T) {
	src := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	copy(AsBytes(mem)[byteOffset:byteOffset+len(src)], src)
}

// ReadFloat16 decodes the binary16 value stored at byteOffset
func ReadFloat16(mem []Unit, byteOffset int) float32 {
	return half.Float16ToFloat32(Read[UintHalf](mem, byteOffset))
}

// WriteFloat16 encodes value as binary16 at byteOffset
func WriteFloat16(mem []Unit, byteOffset int, value float32) {
	Write(mem, byteOffset, half.Float32ToFloat16(value))
}

// Double-width values span two cells that are only guaranteed single-width alignment, so they
// are assembled through a DoubleUnit rather than read in place.

func ReadUint64(mem []Unit) UintDouble {
	return DoubleFromUnits(mem[0], mem[1]).Uint()
}

func ReadSint64(mem []Unit) SintDouble {
	return DoubleFromUnits(mem[0], mem[1]).Sint()
}

func ReadFloat64(mem []Unit) FloatDouble {
	return DoubleFromUnits(mem[0], mem[1]).Float()
}

func WriteUint64(mem []Unit, value UintDouble) {
	d := DoubleFromUint(value)
	copy(mem[:2], d.Units()[:])
}

func WriteSint64(mem []Unit, value SintDouble) {
	d := DoubleFromSint(value)
	copy(mem[:2], d.Units()[:])
}

func WriteFloat64(mem []Unit, value FloatDouble) {
	d := DoubleFromFloat(value)
	copy(mem[:2], d.Units()[:])
}

// The default-width accessors occupy one cell or two, following the build's resolution of
// vector.Uint, vector.Sint and vector.Float.

func ReadUint(mem []Unit) vector.Uint { return Read[vector.Uint](mem, 0) }

func ReadSint(mem []Unit) vector.Sint { return Read[vector.Sint](mem, 0) }

func ReadFloat(mem []Unit) vector.Float { return Read[vector.Float](mem, 0) }

func WriteUint(mem []Unit, value vector.Uint) { Write(mem, 0, value) }

func WriteSint(mem []Unit, value vector.Sint) { Write(mem, 0, value) }

func WriteFloat(mem []Unit, value vector.Float) { Write(mem, 0, value) }

// EncodeLE appends mem to dst as little-endian words, the byte order used by device transfers
// and persisted images.
func EncodeLE(dst []byte, mem []Unit) []byte {
	if !cpu.IsBigEndian {
		return append(dst, AsBytes(mem)...)
	}

	for _, u := range mem {
		dst = binary.LittleEndian.AppendUint32(dst, u.word)
	}
	return dst
}

// DecodeLE converts little-endian words back into Units. The length of src must be a multiple
// of UnitSize.
func DecodeLE(src []byte) ([]Unit, error) {
	if len(src)%UnitSize != 0 {
		return nil, cerrors.Wrapf(ErrPartialUnit, "%d bytes", len(src))
	}

	mem := make([]Unit, len(src)/UnitSize)
	if !cpu.IsBigEndian {
		copy(AsBytes(mem), src)
		return mem, nil
	}

	for i := range mem {
		mem[i].word = binary.LittleEndian.Uint32(src[i*UnitSize:])
	}
	return mem, nil
}
