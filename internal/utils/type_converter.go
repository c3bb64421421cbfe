package utils

import (
	"fmt"
	"strconv"
)

// StringToIndex converts a path segment to a non-negative index
func StringToIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("index is required")
	}
	val, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid index value: %w", err)
	}
	return int(val), nil
}
