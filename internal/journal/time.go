package journal

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control "today" in streak assertions.
var timeNow = time.Now

// timestampLayout is fixed-width ISO-8601 with microseconds, in UTC.
// Fixed width keeps lexicographic order equal to chronological order,
// which the history queries rely on. Matches the precision of the
// timestamps already on disk from earlier deployments.
const timestampLayout = "2006-01-02T15:04:05.000000"

// Now returns the current UTC time formatted for the journal tables.
func Now() string {
	return timeNow().UTC().Format(timestampLayout)
}

// parseLayouts are the accepted timestamp shapes, tried in order when
// deriving calendar dates. Rows written by this store always match the
// first; the rest cover hand-edited or legacy rows.
var parseLayouts = []string{
	timestampLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// parseTimestamp parses a stored timestamp string as UTC.
func parseTimestamp(ts string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
