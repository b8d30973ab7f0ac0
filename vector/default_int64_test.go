//go:build relmem_default_int64

package vector_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/relmem/vector"
)

func TestDefaultIntResolution(t *testing.T) {
	require.Equal(t, 64, vector.DefaultIntBits)
	require.Equal(t, vector.KindUint64, vector.KindOf[vector.Uint]())
	require.Equal(t, vector.KindSint64, vector.KindOf[vector.Sint]())

	require.IsType(t, vector.Uint64V2{}, vector.UintV2{})
	require.IsType(t, vector.Uint64V3{}, vector.UintV3{})
	require.IsType(t, vector.Uint64V4{}, vector.UintV4{})
	require.IsType(t, vector.Uint64V8{}, vector.UintV8{})
	require.IsType(t, vector.Uint64V16{}, vector.UintV16{})
	require.IsType(t, vector.Sint64V2{}, vector.SintV2{})
	require.IsType(t, vector.Sint64V16{}, vector.SintV16{})
	require.Equal(t, uintptr(128), unsafe.Sizeof(vector.SintV16{}))
}
