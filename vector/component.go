package vector

import (
	"fmt"
	"strconv"
	"strings"

	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

const hexDigits = "0123456789ABCDEF"

// LaneName returns the positional name of lane i: s0 through s9, then sA through sF.
func LaneName(i int) string {
	if i < 0 || i >= len(hexDigits) {
		return fmt.Sprintf("s%d?", i)
	}
	return "s" + hexDigits[i:i+1]
}

// componentIndex maps a component name to a lane index for a vector of the given length.
// Cartesian names are only valid for vectors of length 4 or less.
func componentIndex(name string, length int) (int, error) {
	index := -1

	switch {
	case len(name) == 1 && length <= 4:
		index = strings.IndexByte("xyzw", name[0])
	case len(name) == 2 && (name[0] == 's' || name[0] == 'S'):
		index = strings.IndexByte(hexDigits, upper(name[1]))
	}

	if index < 0 || index >= length {
		return 0, cerrors.Wrapf(ErrUnknownComponent, "%q in a %d-lane vector", name, length)
	}
	return index, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func arityError(want, got int) error {
	return cerrors.Wrapf(ErrArityMismatch, "expected %d components but received %d", want, got)
}

func mapLanes[T Lane](lanes []T, f func(T) T) {
	for i := range lanes {
		lanes[i] = f(lanes[i])
	}
}

func zipLanes[T Lane](lanes, other []T, f func(a, b T) T) {
	for i := range lanes {
		lanes[i] = f(lanes[i], other[i])
	}
}

func formatLanes[T Lane](lanes []T) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, lane := range lanes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatLane(lane))
	}
	b.WriteByte(')')
	return b.String()
}

// writeLanes writes the lanes as a JSON array. Integers that do not fit a native int are
// written as decimal strings so no precision is lost.
func writeLanes[T Lane](w *jwriter.Writer, lanes []T) {
	arr := w.Array()
	defer arr.End()

	floats := KindOf[T]().IsFloat()
	for _, lane := range lanes {
		if floats {
			arr.Float64(float64(lane))
			continue
		}

		text := formatLane(lane)
		if i, err := strconv.Atoi(text); err == nil {
			arr.Int(i)
		} else {
			arr.String(text)
		}
	}
}
