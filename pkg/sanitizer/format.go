// Package sanitizer normalizes user-supplied identifiers before they are
// validated or stored.
package sanitizer

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// The result is the canonical form used for uniqueness and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
