package vector_test

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/relmem/vector"
)

func checkLayout[T vector.Lane](t *testing.T) {
	var lane T
	laneSize := int(unsafe.Sizeof(lane))

	require.Equal(t, unsafe.Sizeof(vector.V4[T]{}), unsafe.Sizeof(vector.V3[T]{}))
	require.Equal(t, unsafe.Alignof(vector.V4[T]{}), unsafe.Alignof(vector.V3[T]{}))

	require.Equal(t, 2*laneSize, int(unsafe.Sizeof(vector.V2[T]{})))
	require.Equal(t, 4*laneSize, int(unsafe.Sizeof(vector.V3[T]{})))
	require.Equal(t, 4*laneSize, int(unsafe.Sizeof(vector.V4[T]{})))
	require.Equal(t, 8*laneSize, int(unsafe.Sizeof(vector.V8[T]{})))
	require.Equal(t, 16*laneSize, int(unsafe.Sizeof(vector.V16[T]{})))

	sizes := map[int]uintptr{
		1:  unsafe.Sizeof(lane),
		2:  unsafe.Sizeof(vector.V2[T]{}),
		3:  unsafe.Sizeof(vector.V3[T]{}),
		4:  unsafe.Sizeof(vector.V4[T]{}),
		8:  unsafe.Sizeof(vector.V8[T]{}),
		16: unsafe.Sizeof(vector.V16[T]{}),
	}
	for length, size := range sizes {
		typ, err := vector.TypeOf[T](length)
		require.NoError(t, err)
		require.Equal(t, int(size), typ.Size())
		require.Equal(t, typ.Size(), typ.Align())
	}

	goAligns := map[int]uintptr{
		1:  unsafe.Alignof(lane),
		2:  unsafe.Alignof(vector.V2[T]{}),
		3:  unsafe.Alignof(vector.V3[T]{}),
		4:  unsafe.Alignof(vector.V4[T]{}),
		8:  unsafe.Alignof(vector.V8[T]{}),
		16: unsafe.Alignof(vector.V16[T]{}),
	}
	for length, goAlign := range goAligns {
		require.Equal(t, unsafe.Alignof(lane), goAlign)

		typ, err := vector.TypeOf[T](length)
		require.NoError(t, err)
		require.Zero(t, typ.Align()%int(goAlign), "length %d", length)
	}

	three, err := vector.TypeOf[T](3)
	require.NoError(t, err)
	four, err := vector.TypeOf[T](4)
	require.NoError(t, err)
	require.Equal(t, four.Size(), three.Size())
	require.Equal(t, four.Align(), three.Align())
}

func TestLayout(t *testing.T) {
	t.Run("uint8", checkLayout[uint8])
	t.Run("uint16", checkLayout[uint16])
	t.Run("uint32", checkLayout[uint32])
	t.Run("uint64", checkLayout[uint64])
	t.Run("int8", checkLayout[int8])
	t.Run("int16", checkLayout[int16])
	t.Run("int32", checkLayout[int32])
	t.Run("int64", checkLayout[int64])
	t.Run("float32", checkLayout[float32])
	t.Run("float64", checkLayout[float64])
}

func TestKindOf(t *testing.T) {
	require.Equal(t, vector.KindUint8, vector.KindOf[uint8]())
	require.Equal(t, vector.KindUint16, vector.KindOf[uint16]())
	require.Equal(t, vector.KindUint32, vector.KindOf[uint32]())
	require.Equal(t, vector.KindUint64, vector.KindOf[uint64]())
	require.Equal(t, vector.KindSint8, vector.KindOf[int8]())
	require.Equal(t, vector.KindSint16, vector.KindOf[int16]())
	require.Equal(t, vector.KindSint32, vector.KindOf[int32]())
	require.Equal(t, vector.KindSint64, vector.KindOf[int64]())
	require.Equal(t, vector.KindFloat32, vector.KindOf[float32]())
	require.Equal(t, vector.KindFloat64, vector.KindOf[float64]())

	type handle int32
	require.Equal(t, vector.KindSint32, vector.KindOf[handle]())
}

func TestTypeValidate(t *testing.T) {
	for _, length := range []int{0, 5, 6, 7, 9, 12, 32} {
		_, err := vector.TypeOf[float32](length)
		require.True(t, errors.Is(err, vector.ErrInvalidLength), "length %d", length)
	}

	typ, err := vector.TypeOf[float32](3)
	require.NoError(t, err)
	require.Equal(t, "float32x3", typ.String())
	require.Equal(t, 4, typ.StoredLanes())
	require.Equal(t, 16, typ.Size())
	require.Equal(t, 16, typ.Align())

	scalar, err := vector.TypeOf[uint16](1)
	require.NoError(t, err)
	require.Equal(t, "uint16", scalar.String())
	require.Equal(t, 2, scalar.Align())
}

func TestAlignOffset(t *testing.T) {
	offset, err := vector.AlignOffset(5, 4)
	require.NoError(t, err)
	require.Equal(t, 8, offset)

	offset, err = vector.AlignOffset(16, 16)
	require.NoError(t, err)
	require.Equal(t, 16, offset)

	_, err = vector.AlignOffset(5, 3)
	require.Error(t, err)

	_, err = vector.AlignOffset(5, 0)
	require.Error(t, err)
}

func TestStructLayout(t *testing.T) {
	offsets, size, err := vector.StructLayout(
		vector.Type{Lane: vector.KindUint8, Length: 1},
		vector.Type{Lane: vector.KindFloat32, Length: 3},
		vector.Type{Lane: vector.KindSint16, Length: 2},
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 16, 32}, offsets)
	require.Equal(t, 48, size)

	offsets, size, err = vector.StructLayout(
		vector.Type{Lane: vector.KindUint16, Length: 1},
		vector.Type{Lane: vector.KindUint8, Length: 1},
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, offsets)
	require.Equal(t, 4, size)

	_, _, err = vector.StructLayout(vector.Type{Lane: vector.KindUint8, Length: 5})
	require.True(t, errors.Is(err, vector.ErrInvalidLength))
}
