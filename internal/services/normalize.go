package services

import "strings"

// normalizeHandle lowercases and trims a user-supplied name or email so
// lookups match the normalized columns.
func normalizeHandle(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
