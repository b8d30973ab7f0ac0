package vector

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// V3 is a three-lane vector. It is stored as four lanes, matching the device ABI where a
// 3-vector has the size and alignment of a 4-vector; the fourth lane is padding and is never
// addressed. X, Y and Z alias lanes s0 through s2.
//
// In Go memory a V3 is only aligned to its lane. Device buffers need the stricter
// alignment reported by Type.Align, which callers apply through StructLayout or AlignOffset.
type V3[T Lane] [4]T

// NewV3 builds a V3 from exactly 3 lanes in positional order. Any other count
// returns an error wrapping ErrArityMismatch. The padding lane is zero.
func NewV3[T Lane](lanes ...T) (V3[T], error) {
	var v V3[T]
	if len(lanes) != 3 {
		return v, arityError(3, len(lanes))
	}
	copy(v[:3], lanes)
	return v, nil
}

func Of3[T Lane](x, y, z T) V3[T] {
	return V3[T]{x, y, z}
}

// Splat3 returns a V3 with every addressable lane set to value
func Splat3[T Lane](value T) V3[T] {
	return V3[T]{value, value, value}
}

func (v V3[T]) Len() int { return 3 }

func (v V3[T]) Lane(i int) T { return v[:3][i] }

func (v *V3[T]) SetLane(i int, value T) { v[:3][i] = value }

// Lanes returns a slice of the three addressable lanes, backed by the vector's own storage
func (v *V3[T]) Lanes() []T { return v[:3:3] }

func (v V3[T]) X() T { return v[0] }

func (v V3[T]) Y() T { return v[1] }

func (v V3[T]) Z() T { return v[2] }

func (v *V3[T]) SetX(value T) { v[0] = value }

func (v *V3[T]) SetY(value T) { v[1] = value }

func (v *V3[T]) SetZ(value T) { v[2] = value }

// Get reads a lane by component name (x, y, z or s0 through s2)
func (v V3[T]) Get(name string) (T, error) {
	i, err := componentIndex(name, 3)
	if err != nil {
		var zero T
		return zero, err
	}
	return v[i], nil
}

// Set writes a lane by component name
func (v *V3[T]) Set(name string, value T) error {
	i, err := componentIndex(name, 3)
	if err != nil {
		return err
	}
	v[i] = value
	return nil
}

// RotateLeft shifts lanes cyclically towards s0: x takes y, y takes z, z takes x.
func (v V3[T]) RotateLeft() V3[T] {
	return V3[T]{v[1], v[2], v[0], v[3]}
}

// RotateRight shifts lanes cyclically away from s0: y takes x, z takes y, x takes z.
func (v V3[T]) RotateRight() V3[T] {
	return V3[T]{v[2], v[0], v[1], v[3]}
}

// Map returns a new vector with f applied to each addressable lane. The padding lane is
// carried over unchanged.
func (v V3[T]) Map(f func(T) T) V3[T] {
	mapLanes(v[:3], f)
	return v
}

// Zip returns a new vector combining the lanes of v and other pairwise with f
func (v V3[T]) Zip(other V3[T], f func(a, b T) T) V3[T] {
	zipLanes(v[:3], other[:3], f)
	return v
}

func (v V3[T]) String() string {
	return formatLanes(v[:3])
}

// WriteJSON writes the three addressable lanes to a JSON array
func (v V3[T]) WriteJSON(w *jwriter.Writer) {
	writeLanes(w, v[:3])
}
