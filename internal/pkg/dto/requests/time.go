package requests

import "time"

// Inputs carry ISO-8601 offset timestamps; RFC 3339 parsing accepts
// them with or without fractional seconds.
func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
