package timelog

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// DisplayLayout renders timestamps for humans and is the exact format the
	// fixup parser expects.
	DisplayLayout = "01-02-2006 15:04:05 (UTC-07:00)"
	// PersistentLayout is the RFC 3339 layout stored in the JSON log.
	PersistentLayout = time.RFC3339
	// ProseLayout is DisplayLayout phrased for status messages.
	ProseLayout = "on 01-02-2006 at 15:04:05 (UTC-07:00)"
	// CSVLayout is used for the UTC columns of the CSV export.
	CSVLayout = "2006-01-02T15:04:05"
)

// Time is an absolute instant with its UTC offset, truncated to the second.
type Time struct {
	t time.Time
}

// NewTime truncates t to whole seconds.
func NewTime(t time.Time) Time {
	return Time{t: t.Truncate(time.Second)}
}

// Std exposes the underlying time.Time.
func (t Time) Std() time.Time {
	return t.t
}

// Equal reports whether both values denote the same instant.
func (t Time) Equal(u Time) bool {
	return t.t.Equal(u.t)
}

// Sub returns the span t-u.
func (t Time) Sub(u Time) time.Duration {
	return t.t.Sub(u.t)
}

func (t Time) String() string {
	return RenderTime(t)
}

// RenderTime formats t with DisplayLayout.
func RenderTime(t Time) string {
	return t.t.Format(DisplayLayout)
}

// ParseTime is the inverse of RenderTime.
func ParseTime(value string) (Time, error) {
	parsed, err := time.Parse(DisplayLayout, value)
	if err != nil {
		return Time{}, err
	}
	return NewTime(parsed), nil
}

// RenderPersistent formats t with PersistentLayout.
func RenderPersistent(t Time) string {
	return t.t.Format(PersistentLayout)
}

// ParsePersistent is the inverse of RenderPersistent.
func ParsePersistent(value string) (Time, error) {
	parsed, err := time.Parse(PersistentLayout, value)
	if err != nil {
		return Time{}, err
	}
	return NewTime(parsed), nil
}

// Prose formats t for status messages, e.g. "on 06-24-2022 at 16:55:46 (UTC-05:00)".
func (t Time) Prose() string {
	return t.t.Format(ProseLayout)
}

// MarshalJSON encodes t with PersistentLayout.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(RenderPersistent(t))
}

// UnmarshalJSON decodes a PersistentLayout string.
func (t *Time) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParsePersistent(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Clock supplies the current instant.
type Clock func() time.Time

// SystemClock returns the local wall clock truncated to the second.
func SystemClock() time.Time {
	return time.Now().Truncate(time.Second)
}

// FixedClock always returns t. Handy in tests.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
