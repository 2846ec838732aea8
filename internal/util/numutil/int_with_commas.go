// Package numutil formats numbers for display.
package numutil

import "strconv"

// Integer is any signed integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IntWithCommas returns i with a comma between every group of three digits.
//
// Example:
//
//	12345   -> "12,345"
//	-1000   -> "-1,000"
func IntWithCommas[T Integer](i T) string {
	s := strconv.FormatInt(int64(i), 10)

	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}

	for n := len(s) - 3; n > 0; n -= 3 {
		s = s[:n] + "," + s[n:]
	}
	return sign + s
}
