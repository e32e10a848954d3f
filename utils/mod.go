package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts reads a list of integers separated by commas and/or whitespace.
// An empty string yields an empty list.
func ParseInts(str string) ([]int, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", field, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// JoinInts is the inverse of ParseInts, using a comma separator.
func JoinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
