package vector

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// V16 is a sixteen-lane vector, addressable positionally as s0 through sF.
//
// In Go memory a V16 is only aligned to its lane. Device buffers need the stricter
// alignment reported by Type.Align, which callers apply through StructLayout or AlignOffset.
type V16[T Lane] [16]T

// NewV16 builds a V16 from exactly 16 lanes in positional order. Any other count
// returns an error wrapping ErrArityMismatch.
func NewV16[T Lane](lanes ...T) (V16[T], error) {
	var v V16[T]
	if len(lanes) != len(v) {
		return v, arityError(len(v), len(lanes))
	}
	copy(v[:], lanes)
	return v, nil
}

// Splat16 returns a V16 with every lane set to value
func Splat16[T Lane](value T) V16[T] {
	var v V16[T]
	for i := range v {
		v[i] = value
	}
	return v
}

func (v V16[T]) Len() int { return 16 }

func (v V16[T]) Lane(i int) T { return v[i] }

func (v *V16[T]) SetLane(i int, value T) { v[i] = value }

// Lanes returns a slice backed by the vector's own storage
func (v *V16[T]) Lanes() []T { return v[:] }

// Get reads a lane by component name (s0 through sF)
func (v V16[T]) Get(name string) (T, error) {
	i, err := componentIndex(name, 16)
	if err != nil {
		var zero T
		return zero, err
	}
	return v[i], nil
}

// Set writes a lane by component name
func (v *V16[T]) Set(name string, value T) error {
	i, err := componentIndex(name, 16)
	if err != nil {
		return err
	}
	v[i] = value
	return nil
}

// Map returns a new vector with f applied to each lane
func (v V16[T]) Map(f func(T) T) V16[T] {
	mapLanes(v[:], f)
	return v
}

// Zip returns a new vector combining the lanes of v and other pairwise with f
func (v V16[T]) Zip(other V16[T], f func(a, b T) T) V16[T] {
	zipLanes(v[:], other[:], f)
	return v
}

func (v V16[T]) String() string {
	return formatLanes(v[:])
}

// WriteJSON writes the lanes to a JSON array
func (v V16[T]) WriteJSON(w *jwriter.Writer) {
	writeLanes(w, v[:])
}
