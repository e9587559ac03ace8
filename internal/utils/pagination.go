// Package utils provides small, generic helpers shared across layers.
// Nothing here knows about reports or cases; domain logic stays out.
package utils

import "strconv"

// AtoiDefault converts a string to an int, falling back to def when the
// string is empty or unparsable. The handlers use it for the page and
// page_size query parameters, where a garbage value should mean "first
// page, default size" rather than an error.
//
// Example:
//
//	page := utils.AtoiDefault(c.Query("page"), 1)      // "" -> 1
//	size := utils.AtoiDefault(c.Query("page_size"), 20) // "x" -> 20
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
