package util

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum of the two values.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Diff returns the absolute difference of a and b without underflowing unsigned types.
func Diff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Map applies the given mapper function to each element of the given slice.
func Map[T any, U any](ts []T, mapper func(T) U) []U {
	var result = make([]U, len(ts))
	for i, v := range ts {
		result[i] = mapper(v)
	}
	return result
}
