package utils

import "strings"

// ToBool interprets a query or header value as a flag.
// "1", "true", "yes" and "on" are true, case-insensitively; anything else is false.
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
