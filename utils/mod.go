package utils

import "cmp"

// FindIndex returns the index of the first element matching pred, or -1.
func FindIndex[T any](slice []T, pred func(T) bool) int {
	for i, v := range slice {
		if pred(v) {
			return i
		}
	}
	return -1
}

// Clamp bounds x to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return max(lo, min(hi, x))
}
