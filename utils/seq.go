package utils

// MaxBy returns the maximum value of f over items, or 0 when items is empty.
func MaxBy[T any](items []T, f func(T) int) int {
	best := 0
	for _, it := range items {
		if v := f(it); v > best {
			best = v
		}
	}

	return best
}

// Coalesce returns the first non-zero value, or the zero value when all
// arguments are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}

	return zero
}
