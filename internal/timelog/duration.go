package timelog

import (
	"fmt"
	"strings"
	"time"
)

// NotApplicable is rendered for spans that are zero or negative.
const NotApplicable = "N/A"

// FormatDuration renders d as "1 hour, 2 minutes, 3 seconds". Zero components
// are omitted and spans of zero or fewer whole seconds render as "N/A".
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	hours, minutes, secs := splitSeconds(seconds)

	var clauses []string
	clauses = appendClause(clauses, hours, "hour")
	clauses = appendClause(clauses, minutes, "minute")
	clauses = appendClause(clauses, secs, "second")
	if seconds <= 0 {
		clauses = append(clauses, NotApplicable)
	}
	return strings.Join(clauses, ", ")
}

// splitSeconds breaks a whole-second count into hours, minutes within the
// hour and seconds within the minute.
func splitSeconds(seconds int64) (hours, minutes, secs int64) {
	return seconds / 3600, (seconds / 60) % 60, seconds % 60
}

func appendClause(clauses []string, value int64, noun string) []string {
	switch {
	case value == 1:
		return append(clauses, "1 "+noun)
	case value > 1:
		return append(clauses, fmt.Sprintf("%d %ss", value, noun))
	default:
		return clauses
	}
}
