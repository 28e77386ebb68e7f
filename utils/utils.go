package utils

// GetZero returns the zero value of T, used as the placeholder result of
// failed lookups.
func GetZero[T any]() T {
	var result T
	return result
}
