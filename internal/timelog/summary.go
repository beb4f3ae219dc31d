package timelog

import "time"

// Summary aggregates the completed sessions of a log relative to an instant.
type Summary struct {
	Completed     int
	Total         time.Duration
	Today         time.Duration
	ThisWeek      time.Duration
	LastCompleted *Session
	Current       *Session
}

// Summarize totals completed sessions. A session counts toward Today or
// ThisWeek only when both its start and its end fall on now's calendar day or
// ISO week, judged in now's location.
func Summarize(log *Log, now time.Time) Summary {
	summary := Summary{}
	if log == nil {
		return summary
	}

	loc := now.Location()
	summary.Completed = len(log.Completed)
	for _, session := range log.Completed {
		if session.End == nil {
			continue
		}
		start := session.Start.Std().In(loc)
		end := session.End.Std().In(loc)
		elapsed := end.Sub(start)

		summary.Total += elapsed
		if sameDay(start, now) && sameDay(end, now) {
			summary.Today += elapsed
		}
		if sameWeek(start, now) && sameWeek(end, now) {
			summary.ThisWeek += elapsed
		}
	}

	if last, ok := log.LastCompleted(); ok {
		summary.LastCompleted = &last
	}
	if log.Current != nil {
		current := *log.Current
		summary.Current = &current
	}
	return summary
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}
