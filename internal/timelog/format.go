package timelog

import (
	"strings"
	"time"
)

// currentMarker stands in for the end timestamp of the current session.
const currentMarker = "[now]"

// currentPadding lines the current session's duration up with completed lines.
var currentPadding = strings.Repeat(" ", len(DisplayLayout)-len(currentMarker))

// Format renders the log in the fixup format: every completed session in
// stored order, then the current one with its duration measured against now.
// An empty log renders as "".
func Format(log *Log, now time.Time) string {
	if log == nil {
		return ""
	}

	var builder strings.Builder
	for _, session := range log.Completed {
		builder.WriteString(formatCompleted(session))
		builder.WriteByte('\n')
	}
	if log.Current != nil {
		builder.WriteString(formatCurrent(*log.Current, now))
		builder.WriteByte('\n')
	}
	return builder.String()
}

func formatCompleted(session Session) string {
	var builder strings.Builder
	builder.Grow(2*len(DisplayLayout) + 32 + len(session.Text()))
	builder.WriteString(RenderTime(session.Start))
	builder.WriteString(" -> ")
	if session.End != nil {
		builder.WriteString(RenderTime(*session.End))
	}
	builder.WriteString(" (")
	builder.WriteString(FormatDuration(session.Elapsed(time.Time{})))
	builder.WriteString("): ")
	builder.WriteString(session.Text())
	return builder.String()
}

func formatCurrent(session Session, now time.Time) string {
	var builder strings.Builder
	builder.Grow(2*len(DisplayLayout) + 32)
	builder.WriteString(RenderTime(session.Start))
	builder.WriteString(" -> ")
	builder.WriteString(currentMarker)
	builder.WriteString(currentPadding)
	builder.WriteString(" (")
	builder.WriteString(FormatDuration(session.Elapsed(now)))
	builder.WriteByte(')')
	return builder.String()
}
