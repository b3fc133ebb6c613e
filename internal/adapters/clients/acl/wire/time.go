// Package wire holds small helpers shared by the ACL translator packages.
package wire

import "time"

// Accepted timestamp layouts. The tracker API emits RFC 3339 strings from
// some deployments and naive ISO 8601 strings (no zone, optional fractional
// seconds) from others; naive values are interpreted as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTime parses a tracker API timestamp, trying each accepted layout in
// order. Returns the zero time when no layout matches.
func ParseTime(s string) time.Time {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
