//go:build !relmem_default_int64

package vector_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/relmem/vector"
)

func TestDefaultIntResolution(t *testing.T) {
	require.Equal(t, 32, vector.DefaultIntBits)
	require.Equal(t, vector.KindUint32, vector.KindOf[vector.Uint]())
	require.Equal(t, vector.KindSint32, vector.KindOf[vector.Sint]())

	require.IsType(t, vector.Uint32V2{}, vector.UintV2{})
	require.IsType(t, vector.Uint32V3{}, vector.UintV3{})
	require.IsType(t, vector.Uint32V4{}, vector.UintV4{})
	require.IsType(t, vector.Uint32V8{}, vector.UintV8{})
	require.IsType(t, vector.Uint32V16{}, vector.UintV16{})
	require.IsType(t, vector.Sint32V2{}, vector.SintV2{})
	require.IsType(t, vector.Sint32V16{}, vector.SintV16{})
	require.Equal(t, uintptr(64), unsafe.Sizeof(vector.SintV16{}))
}
