package vector

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// V8 is an eight-lane vector, addressable positionally as s0 through s7.
//
// In Go memory a V8 is only aligned to its lane. Device buffers need the stricter
// alignment reported by Type.Align, which callers apply through StructLayout or AlignOffset.
type V8[T Lane] [8]T

// NewV8 builds a V8 from exactly 8 lanes in positional order. Any other count
// returns an error wrapping ErrArityMismatch.
func NewV8[T Lane](lanes ...T) (V8[T], error) {
	var v V8[T]
	if len(lanes) != len(v) {
		return v, arityError(len(v), len(lanes))
	}
	copy(v[:], lanes)
	return v, nil
}

// Splat8 returns a V8 with every lane set to value
func Splat8[T Lane](value T) V8[T] {
	var v V8[T]
	for i := range v {
		v[i] = value
	}
	return v
}

func (v V8[T]) Len() int { return 8 }

func (v V8[T]) Lane(i int) T { return v[i] }

func (v *V8[T]) SetLane(i int, value T) { v[i] = value }

// Lanes returns a slice backed by the vector's own storage
func (v *V8[T]) Lanes() []T { return v[:] }

// Get reads a lane by component name (s0 through s7)
func (v V8[T]) Get(name string) (T, error) {
	i, err := componentIndex(name, 8)
	if err != nil {
		var zero T
		return zero, err
	}
	return v[i], nil
}

// Set writes a lane by component name
func (v *V8[T]) Set(name string, value T) error {
	i, err := componentIndex(name, 8)
	if err != nil {
		return err
	}
	v[i] = value
	return nil
}

// Map returns a new vector with f applied to each lane
func (v V8[T]) Map(f func(T) T) V8[T] {
	mapLanes(v[:], f)
	return v
}

// Zip returns a new vector combining the lanes of v and other pairwise with f
func (v V8[T]) Zip(other V8[T], f func(a, b T) T) V8[T] {
	zipLanes(v[:], other[:], f)
	return v
}

func (v V8[T]) String() string {
	return formatLanes(v[:])
}

// WriteJSON writes the lanes to a JSON array
func (v V8[T]) WriteJSON(w *jwriter.Writer) {
	writeLanes(w, v[:])
}
