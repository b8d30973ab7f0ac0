package vector

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// V4 is a four-lane vector. X, Y, Z and W alias lanes s0 through s3.
//
// In Go memory a V4 is only aligned to its lane. Device buffers need the stricter
// alignment reported by Type.Align, which callers apply through StructLayout or AlignOffset.
type V4[T Lane] [4]T

// NewV4 builds a V4 from exactly 4 lanes in positional order. Any other count
// returns an error wrapping ErrArityMismatch.
func NewV4[T Lane](lanes ...T) (V4[T], error) {
	var v V4[T]
	if len(lanes) != len(v) {
		return v, arityError(len(v), len(lanes))
	}
	copy(v[:], lanes)
	return v, nil
}

func Of4[T Lane](x, y, z, w T) V4[T] {
	return V4[T]{x, y, z, w}
}

// Splat4 returns a V4 with every lane set to value
func Splat4[T Lane](value T) V4[T] {
	var v V4[T]
	for i := range v {
		v[i] = value
	}
	return v
}

func (v V4[T]) Len() int { return 4 }

func (v V4[T]) Lane(i int) T { return v[i] }

func (v *V4[T]) SetLane(i int, value T) { v[i] = value }

// Lanes returns a slice backed by the vector's own storage
func (v *V4[T]) Lanes() []T { return v[:] }

func (v V4[T]) X() T { return v[0] }

func (v V4[T]) Y() T { return v[1] }

func (v V4[T]) Z() T { return v[2] }

func (v V4[T]) W() T { return v[3] }

func (v *V4[T]) SetX(value T) { v[0] = value }

func (v *V4[T]) SetY(value T) { v[1] = value }

func (v *V4[T]) SetZ(value T) { v[2] = value }

func (v *V4[T]) SetW(value T) { v[3] = value }

// Get reads a lane by component name (x, y, z, w or s0 through sF)
func (v V4[T]) Get(name string) (T, error) {
	i, err := componentIndex(name, 4)
	if err != nil {
		var zero T
		return zero, err
	}
	return v[i], nil
}

// Set writes a lane by component name
func (v *V4[T]) Set(name string, value T) error {
	i, err := componentIndex(name, 4)
	if err != nil {
		return err
	}
	v[i] = value
	return nil
}

// Map returns a new vector with f applied to each lane
func (v V4[T]) Map(f func(T) T) V4[T] {
	mapLanes(v[:], f)
	return v
}

// Zip returns a new vector combining the lanes of v and other pairwise with f
func (v V4[T]) Zip(other V4[T], f func(a, b T) T) V4[T] {
	zipLanes(v[:], other[:], f)
	return v
}

func (v V4[T]) String() string {
	return formatLanes(v[:])
}

// WriteJSON writes the lanes to a JSON array
func (v V4[T]) WriteJSON(w *jwriter.Writer) {
	writeLanes(w, v[:])
}
