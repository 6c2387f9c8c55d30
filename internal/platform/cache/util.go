package cache

import "strings"

// safeKey escapes characters that are problematic for Redis keys.
func safeKey(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
