package utils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// CheckPow2 returns an error wrapping PowerOfTwoError when number is zero or not a power of two.
// name is used to identify the value in the error message.
func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two.
func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

// NextPow2 returns the smallest power of two that is greater than or equal to value.
func NextPow2(value int) int {
	result := 1
	for result < value {
		result <<= 1
	}
	return result
}

// DivRoundUp divides value by divisor, rounding towards positive infinity.
func DivRoundUp(value, divisor int) int {
	return (value + divisor - 1) / divisor
}
