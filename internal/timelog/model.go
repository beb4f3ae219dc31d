package timelog

import (
	"fmt"
	"strings"
	"time"
)

// Session is one tracked interval of work. A session without End is the
// current, in-progress one and carries no Message.
type Session struct {
	Start   Time    `json:"start"`
	End     *Time   `json:"end"`
	Message *string `json:"message"`
}

// IsCurrent reports whether the session is still in progress.
func (s Session) IsCurrent() bool {
	return s.End == nil
}

// Elapsed is End-Start for completed sessions and now-Start otherwise.
func (s Session) Elapsed(now time.Time) time.Duration {
	if s.End != nil {
		return s.End.Sub(s.Start)
	}
	return now.Sub(s.Start.Std())
}

// Text returns the message, or "" for a current session.
func (s Session) Text() string {
	if s.Message == nil {
		return ""
	}
	return *s.Message
}

// Log is the full record: completed sessions in insertion order plus at most
// one current session.
type Log struct {
	Completed []Session `json:"completed"`
	Current   *Session  `json:"current"`
}

// Begin starts a current session at now.
func (l *Log) Begin(now time.Time) (Session, error) {
	if l.Current != nil {
		return *l.Current, ErrSessionInProgress
	}
	session := Session{Start: NewTime(now)}
	l.Current = &session
	return session, nil
}

// End completes the current session at now with a single-line message and
// moves it to Completed. The log is left untouched on error.
func (l *Log) End(now time.Time, message string) (Session, error) {
	if l.Current == nil {
		return Session{}, ErrNoCurrentSession
	}
	if strings.Contains(message, "\n") {
		return Session{}, ErrMultilineMessage
	}

	session := *l.Current
	end := NewTime(now)
	session.End = &end
	session.Message = &message

	l.Completed = append(l.Completed, session)
	l.Current = nil
	return session, nil
}

// Cancel discards the current session without recording it.
func (l *Log) Cancel() (Session, error) {
	if l.Current == nil {
		return Session{}, ErrNoCurrentSession
	}
	session := *l.Current
	l.Current = nil
	return session, nil
}

// LastCompleted returns the most recently appended completed session.
func (l *Log) LastCompleted() (Session, bool) {
	if len(l.Completed) == 0 {
		return Session{}, false
	}
	return l.Completed[len(l.Completed)-1], true
}

// IsEmpty reports whether the log holds no sessions at all.
func (l *Log) IsEmpty() bool {
	return len(l.Completed) == 0 && l.Current == nil
}

// Validate checks the structural invariants of a decoded log.
func (l *Log) Validate() error {
	for i, session := range l.Completed {
		if session.End == nil || session.Message == nil {
			return fmt.Errorf("%w: completed session %d needs an end and a message", ErrInvalidLog, i+1)
		}
		if strings.Contains(*session.Message, "\n") {
			return fmt.Errorf("%w: completed session %d: %v", ErrInvalidLog, i+1, ErrMultilineMessage)
		}
	}
	if l.Current != nil && (l.Current.End != nil || l.Current.Message != nil) {
		return fmt.Errorf("%w: current session must not have an end or a message", ErrInvalidLog)
	}
	return nil
}
