package utils

import "strconv"

// FormatNumber prints a float in its shortest form: 21, 21.5, -3.25
func FormatNumber(value float64) string {
	if value == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Clamp limits an index between min and max
func Clamp(value, min, max int) int {
	if max < min {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
