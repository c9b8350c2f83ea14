package utils

// FindIndex returns the position of the first element equal to item, or -1
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
