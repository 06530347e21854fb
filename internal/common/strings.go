package common

import "strings"

// UnknownStr is the textual form of an enum value outside its known range.
const UnknownStr = "unknown"

// FoldKey returns the case-insensitive lookup key for a record or object name.
func FoldKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Quote wraps a non-empty name in single quotes for messages.
// Empty names render as "<unnamed>".
func Quote(name string) string {
	if name == "" {
		return "<unnamed>"
	}

	return "'" + name + "'"
}
