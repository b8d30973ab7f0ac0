package utils_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/relmem/internal/utils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, utils.CheckPow2(1, "one"))
	require.NoError(t, utils.CheckPow2(uint8(128), "byte"))
	require.NoError(t, utils.CheckPow2(uint64(1)<<40, "large"))

	err := utils.CheckPow2(12, "twelve")
	require.Error(t, err)
	require.True(t, errors.Is(err, utils.PowerOfTwoError))
	require.Contains(t, err.Error(), "twelve is 12")

	require.True(t, errors.Is(utils.CheckPow2(0, "zero"), utils.PowerOfTwoError))
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, utils.AlignUp(0, 4))
	require.Equal(t, 4, utils.AlignUp(1, 4))
	require.Equal(t, 4, utils.AlignUp(4, 4))
	require.Equal(t, 16, utils.AlignUp(9, 8))
}

func TestNextPow2(t *testing.T) {
	require.Equal(t, 1, utils.NextPow2(0))
	require.Equal(t, 1, utils.NextPow2(1))
	require.Equal(t, 4, utils.NextPow2(3))
	require.Equal(t, 16, utils.NextPow2(12))
	require.Equal(t, 16, utils.NextPow2(16))
}

func TestDivRoundUp(t *testing.T) {
	require.Equal(t, 0, utils.DivRoundUp(0, 4))
	require.Equal(t, 1, utils.DivRoundUp(1, 4))
	require.Equal(t, 2, utils.DivRoundUp(8, 4))
	require.Equal(t, 3, utils.DivRoundUp(9, 4))
}
