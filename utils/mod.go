package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Count returns the number of occurrences of item in slice.
func Count[T comparable](slice []T, item T) int {
	n := 0
	for _, v := range slice {
		if v == item {
			n++
		}
	}
	return n
}

// Filter returns the elements of slice for which keep is true, preserving order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
