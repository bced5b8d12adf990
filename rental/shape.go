package rental

import (
	"strconv"
	"strings"
)

// Payload shaping helpers used by the request Normalize methods: form input
// arrives as padded strings and string-typed numbers, the backend expects
// trimmed strings, null for empty optionals and real numbers.

func trim(s string) string {
	return strings.TrimSpace(s)
}

// nilIfEmpty turns an empty optional string into null so the backend never
// sees empty strings for optional fields
func nilIfEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// parseAmount coerces a numeric form input to a float, returning 0 for
// blank input
func parseAmount(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return value
}

// parseCount coerces an integer form input, returning 0 for blank input
func parseCount(s string) int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return value
}
