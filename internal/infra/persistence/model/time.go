package model

import "time"

// Timestamp wire formats. Documents written by the previous console stored
// JavaScript toISOString() values (millisecond precision, always UTC);
// writeLayout reproduces that format exactly so round-tripping a document
// never rewrites its timestamp fields.
const (
	writeLayout = "2006-01-02T15:04:05.000Z07:00"
	readLayout  = time.RFC3339Nano
)

// FormatTime renders a timestamp in the store's wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(writeLayout)
}

// parseTimeOrEpoch parses a stored timestamp. Absent or malformed values
// fall back to the Unix epoch so that status derivation naturally
// classifies the record as expired instead of failing the mapping.
func parseTimeOrEpoch(s string) time.Time {
	if s == "" {
		return time.Unix(0, 0).UTC()
	}

	t, err := time.Parse(readLayout, s)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}

	return t.UTC()
}
