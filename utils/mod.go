package utils

import "golang.org/x/exp/constraints"

// CeilDiv returns a/b rounded up. b must be positive.
func CeilDiv[T constraints.Integer](a, b T) T {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// AtLeast returns v, or floor when v is smaller.
func AtLeast[T constraints.Integer](v, floor T) T {
	if v < floor {
		return floor
	}
	return v
}
