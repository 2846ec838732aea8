package styled

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatValue renders a scanned SQLite value as an SQL literal.
//
// Example:
//
//	int64(20)          -> 20
//	"Computer Science" -> 'Computer Science'
//	nil                -> NULL
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case []byte:
		return "x'" + hex.EncodeToString(val) + "'"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatReal(val)
	case time.Time:
		return "'" + val.Format(time.RFC3339Nano) + "'"
	default:
		return fmt.Sprint(val)
	}
}

// formatReal renders f in its shortest form, keeping a fractional part on
// whole numbers and switching to exponent notation outside [1e-4, 1e16).
//
// Example:
//
//	20     -> 20.0
//	0.25   -> 0.25
//	1e16   -> 1e+16
func formatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatRow renders a row as a parenthesised tuple of SQL literals, for
// example (1, 'John', 'Smith', 20, 'Computer Science'). A single value keeps
// a trailing comma, as in ('Students',).
func FormatRow(row []any) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = FormatValue(v)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
