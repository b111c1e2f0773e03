package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts a raw cell into an int, float64, or the trimmed string
func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Numeric safely converts supported types to float64.
func Numeric(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	default:
		return 0, false
	}
}

// ParseIndicator coerces a 0/1 or boolean cell into a bool
func ParseIndicator(s string) (bool, error) {
	v := ParseValue(s)
	if num, ok := Numeric(v); ok {
		switch num {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
		return false, fmt.Errorf("indicator must be 0 or 1, got %q", s)
	}

	switch strings.ToLower(v.(string)) {
	case "true", "t", "yes", "y":
		return true, nil
	case "false", "f", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("indicator must be 0/1 or boolean, got %q", s)
}
