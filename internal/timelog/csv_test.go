package timelog

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteCSV(t *testing.T) {
	log := &Log{
		Completed: []Session{
			completedSession(
				time.Date(2022, time.June, 24, 11, 55, 46, 0, centralDaylight),
				time.Date(2022, time.June, 24, 11, 55, 49, 0, centralDaylight),
				"Message here",
			),
			completedSession(
				time.Date(2022, time.June, 24, 9, 0, 0, 0, time.UTC),
				time.Date(2022, time.June, 24, 11, 2, 3, 0, time.UTC),
				`quoted, "with" commas`,
			),
		},
		Current: &Session{Start: NewTime(time.Date(2022, time.June, 24, 12, 0, 0, 0, time.UTC))},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, log); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := strings.Join([]string{
		"UTC-Start,UTC-End,Hours,Minutes,Seconds,Message",
		"2022-06-24T16:55:46,2022-06-24T16:55:49,0,0,3,Message here",
		`2022-06-24T09:00:00,2022-06-24T11:02:03,2,2,3,"quoted, ""with"" commas"`,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("WriteCSV output = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSVEmptyLog(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, &Log{}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != "UTC-Start,UTC-End,Hours,Minutes,Seconds,Message\n" {
		t.Fatalf("WriteCSV output = %q, want header only", buf.String())
	}
}
