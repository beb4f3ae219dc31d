package timelog

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	// Wednesday.
	now := time.Date(2022, time.June, 22, 18, 0, 0, 0, time.UTC)
	log := &Log{
		Completed: []Session{
			// Today.
			completedSession(now.Add(-4*time.Hour), now.Add(-3*time.Hour), "today"),
			// Monday of the same ISO week.
			completedSession(now.Add(-50*time.Hour), now.Add(-49*time.Hour), "monday"),
			// Previous week.
			completedSession(now.Add(-8*24*time.Hour), now.Add(-8*24*time.Hour+30*time.Minute), "last week"),
			// Crosses into today from yesterday, so it only counts for the week.
			completedSession(time.Date(2022, time.June, 21, 23, 30, 0, 0, time.UTC), time.Date(2022, time.June, 22, 0, 30, 0, 0, time.UTC), "midnight"),
		},
		Current: &Session{Start: NewTime(now.Add(-time.Minute))},
	}

	got := Summarize(log, now)
	if got.Completed != 4 {
		t.Fatalf("Completed = %d, want 4", got.Completed)
	}
	if got.Total != 3*time.Hour+30*time.Minute {
		t.Fatalf("Total = %v, want 3h30m", got.Total)
	}
	if got.Today != time.Hour {
		t.Fatalf("Today = %v, want 1h", got.Today)
	}
	if got.ThisWeek != 3*time.Hour {
		t.Fatalf("ThisWeek = %v, want 3h", got.ThisWeek)
	}
	if got.LastCompleted == nil || got.LastCompleted.Text() != "midnight" {
		t.Fatalf("LastCompleted = %#v, want the midnight session", got.LastCompleted)
	}
	if got.Current == nil || !got.Current.Start.Equal(NewTime(now.Add(-time.Minute))) {
		t.Fatalf("Current = %#v, want the running session", got.Current)
	}
}

func TestSummarizeUsesNowLocation(t *testing.T) {
	// 23:30 on the 21st in UTC is 18:30 on the 21st at UTC-05:00, and 04:30
	// on the 22nd at UTC+05:00.
	start := time.Date(2022, time.June, 21, 23, 30, 0, 0, time.UTC)
	log := &Log{Completed: []Session{completedSession(start, start.Add(20*time.Minute), "late")}}

	west := Summarize(log, time.Date(2022, time.June, 21, 20, 0, 0, 0, centralDaylight))
	if west.Today != 20*time.Minute {
		t.Fatalf("Today at UTC-05:00 = %v, want 20m", west.Today)
	}
	east := Summarize(log, time.Date(2022, time.June, 21, 20, 0, 0, 0, time.FixedZone("", 5*60*60)))
	if east.Today != 0 {
		t.Fatalf("Today at UTC+05:00 = %v, want 0", east.Today)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, time.Now())
	if got.Completed != 0 || got.LastCompleted != nil || got.Current != nil {
		t.Fatalf("Summarize(nil) = %#v, want zero summary", got)
	}
}
