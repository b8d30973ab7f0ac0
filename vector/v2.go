package vector

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// V2 is a two-lane vector. X and Y alias lanes s0 and s1.
//
// In Go memory a V2 is only aligned to its lane. Device buffers need the stricter
// alignment reported by Type.Align, which callers apply through StructLayout or AlignOffset.
type V2[T Lane] [2]T

// NewV2 builds a V2 from exactly 2 lanes in positional order. Any other count
// returns an error wrapping ErrArityMismatch.
func NewV2[T Lane](lanes ...T) (V2[T], error) {
	var v V2[T]
	if len(lanes) != len(v) {
		return v, arityError(len(v), len(lanes))
	}
	copy(v[:], lanes)
	return v, nil
}

func Of2[T Lane](x, y T) V2[T] {
	return V2[T]{x, y}
}

// Splat2 returns a V2 with every lane set to value
func Splat2[T Lane](value T) V2[T] {
	var v V2[T]
	for i := range v {
		v[i] = value
	}
	return v
}

func (v V2[T]) Len() int { return 2 }

func (v V2[T]) Lane(i int) T { return v[i] }

func (v *V2[T]) SetLane(i int, value T) { v[i] = value }

// Lanes returns a slice backed by the vector's own storage
func (v *V2[T]) Lanes() []T { return v[:] }

func (v V2[T]) X() T { return v[0] }

func (v V2[T]) Y() T { return v[1] }

func (v *V2[T]) SetX(value T) { v[0] = value }

func (v *V2[T]) SetY(value T) { v[1] = value }

// Get reads a lane by component name (x, y, z, w or s0 through sF)
func (v V2[T]) Get(name string) (T, error) {
	i, err := componentIndex(name, 2)
	if err != nil {
		var zero T
		return zero, err
	}
	return v[i], nil
}

// Set writes a lane by component name
func (v *V2[T]) Set(name string, value T) error {
	i, err := componentIndex(name, 2)
	if err != nil {
		return err
	}
	v[i] = value
	return nil
}

// Map returns a new vector with f applied to each lane
func (v V2[T]) Map(f func(T) T) V2[T] {
	mapLanes(v[:], f)
	return v
}

// Zip returns a new vector combining the lanes of v and other pairwise with f
func (v V2[T]) Zip(other V2[T], f func(a, b T) T) V2[T] {
	zipLanes(v[:], other[:], f)
	return v
}

func (v V2[T]) String() string {
	return formatLanes(v[:])
}

// WriteJSON writes the lanes to a JSON array
func (v V2[T]) WriteJSON(w *jwriter.Writer) {
	writeLanes(w, v[:])
}
