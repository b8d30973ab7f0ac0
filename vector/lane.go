package vector

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Lane is the set of scalar types that can occupy a vector lane: unsigned and signed integers of
// quarter, half, single and double width, and floating-point numbers of single and double width.
type Lane interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// IntLane is the subset of Lane holding integer types
type IntLane interface {
	Lane
	constraints.Integer
}

// FloatLane is the subset of Lane holding floating-point types
type FloatLane interface {
	Lane
	constraints.Float
}

// LaneKind identifies one of the ten concrete lane types
type LaneKind uint8

const (
	KindUint8 LaneKind = iota
	KindUint16
	KindUint32
	KindUint64
	KindSint8
	KindSint16
	KindSint32
	KindSint64
	KindFloat32
	KindFloat64
)

var laneKindMapping = map[LaneKind]string{
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindSint8:   "int8",
	KindSint16:  "int16",
	KindSint32:  "int32",
	KindSint64:  "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

func (k LaneKind) String() string {
	return laneKindMapping[k]
}

// Size returns the size in bytes of a single lane of this kind
func (k LaneKind) Size() int {
	switch k {
	case KindUint8, KindSint8:
		return 1
	case KindUint16, KindSint16:
		return 2
	case KindUint32, KindSint32, KindFloat32:
		return 4
	default:
		return 8
	}
}

// IsFloat returns true for the floating-point kinds
func (k LaneKind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsSigned returns true for signed integer and floating-point kinds
func (k LaneKind) IsSigned() bool {
	return k >= KindSint8
}

// KindOf reports the LaneKind of T. Named types are classified by their underlying type.
func KindOf[T Lane]() LaneKind {
	var zero T
	size := unsafe.Sizeof(zero)

	one := T(1)
	if one/T(2) != 0 {
		if size == 4 {
			return KindFloat32
		}
		return KindFloat64
	}

	signed := zero-one < zero
	switch size {
	case 1:
		if signed {
			return KindSint8
		}
		return KindUint8
	case 2:
		if signed {
			return KindSint16
		}
		return KindUint16
	case 4:
		if signed {
			return KindSint32
		}
		return KindUint32
	default:
		if signed {
			return KindSint64
		}
		return KindUint64
	}
}

// Add returns a + b. It is intended to be passed to Zip.
func Add[T Lane](a, b T) T { return a + b }

// Sub returns a - b
func Sub[T Lane](a, b T) T { return a - b }

// Mul returns a * b
func Mul[T Lane](a, b T) T { return a * b }

// Div returns a / b for floating-point lanes
func Div[T FloatLane](a, b T) T { return a / b }

func Min[T Lane](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func Max[T Lane](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func And[T IntLane](a, b T) T { return a & b }
func Or[T IntLane](a, b T) T  { return a | b }
func Xor[T IntLane](a, b T) T { return a ^ b }

func formatLane[T Lane](value T) string {
	kind := KindOf[T]()
	switch {
	case kind == KindFloat32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)
	case kind == KindFloat64:
		return strconv.FormatFloat(float64(value), 'g', -1, 64)
	case kind.IsSigned():
		return strconv.FormatInt(int64(value), 10)
	default:
		return strconv.FormatUint(uint64(value), 10)
	}
}
