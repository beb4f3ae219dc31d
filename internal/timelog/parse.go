package timelog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineLength bounds a single fixup line; messages are free-form text.
const maxLineLength = 1 << 20

// stampShape describes a display timestamp character by character: '0' is
// any digit, '+' is an offset sign, everything else is literal.
const stampShape = "00-00-0000 00:00:00 (UTC+00:00)"

type lineKind uint8

const (
	lineMalformed lineKind = iota
	lineCompleted
	lineCurrent
)

// entryLine is one tokenized fixup line. Timestamps are kept raw so calendar
// errors can be told apart from structural ones.
type entryLine struct {
	kind       lineKind
	start      string
	end        string
	message    string
	hasMessage bool
}

// Parse reads the fixup format back into a Log. Blank lines and lines
// starting with '#' are skipped, the parenthesized durations are ignored and
// sessions keep the order of their lines. Any rejected line aborts the whole
// parse with a *ParseError.
func Parse(r io.Reader) (*Log, error) {
	log := &Log{}
	if r == nil {
		return log, nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fail := func(err error) error {
			return &ParseError{Line: lineNo, Text: raw, Err: err}
		}

		entry := scanLine(raw)
		switch entry.kind {
		case lineCurrent:
			if entry.hasMessage {
				return nil, fail(ErrCurrentWithMessage)
			}
			if log.Current != nil {
				return nil, fail(ErrMultipleCurrent)
			}
			start, err := parseStamp(entry.start)
			if err != nil {
				return nil, fail(err)
			}
			log.Current = &Session{Start: start}
		case lineCompleted:
			if !entry.hasMessage {
				return nil, fail(ErrMissingMessage)
			}
			start, err := parseStamp(entry.start)
			if err != nil {
				return nil, fail(err)
			}
			end, err := parseStamp(entry.end)
			if err != nil {
				return nil, fail(err)
			}
			message := entry.message
			log.Completed = append(log.Completed, Session{
				Start:   start,
				End:     &end,
				Message: &message,
			})
		default:
			return nil, fail(ErrMalformedLine)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return log, nil
}

func parseStamp(value string) (Time, error) {
	t, err := ParseTime(value)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	return t, nil
}

// scanLine tokenizes
//
//	<stamp> -> <stamp|[now]> <blanks> (<anything but ')'>)[: <message>]
//
// with leading blanks ignored.
func scanLine(line string) entryLine {
	sc := lineScanner{s: strings.TrimLeft(line, " \t")}
	malformed := entryLine{kind: lineMalformed}

	var entry entryLine
	var ok bool
	if entry.start, ok = sc.stamp(); !ok {
		return malformed
	}
	if !sc.literal(" -> ") {
		return malformed
	}

	if sc.literal(currentMarker) {
		entry.kind = lineCurrent
	} else if entry.end, ok = sc.stamp(); ok {
		entry.kind = lineCompleted
	} else {
		return malformed
	}

	if sc.blanks() == 0 || !sc.literal("(") {
		return malformed
	}
	if !sc.skipPast(')') {
		return malformed
	}

	rest := sc.rest()
	switch {
	case strings.HasPrefix(rest, ": "):
		entry.message = rest[len(": "):]
		entry.hasMessage = true
	case strings.TrimSpace(rest) == "":
	default:
		return malformed
	}
	return entry
}

type lineScanner struct {
	s   string
	pos int
}

func (sc *lineScanner) literal(lit string) bool {
	if !strings.HasPrefix(sc.s[sc.pos:], lit) {
		return false
	}
	sc.pos += len(lit)
	return true
}

func (sc *lineScanner) blanks() int {
	n := 0
	for sc.pos < len(sc.s) && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
		n++
	}
	return n
}

func (sc *lineScanner) skipPast(c byte) bool {
	idx := strings.IndexByte(sc.s[sc.pos:], c)
	if idx < 0 {
		return false
	}
	sc.pos += idx + 1
	return true
}

func (sc *lineScanner) rest() string {
	return sc.s[sc.pos:]
}

func (sc *lineScanner) stamp() (string, bool) {
	if len(sc.s)-sc.pos < len(stampShape) {
		return "", false
	}
	candidate := sc.s[sc.pos : sc.pos+len(stampShape)]
	for i := 0; i < len(stampShape); i++ {
		c := candidate[i]
		switch stampShape[i] {
		case '0':
			if c < '0' || c > '9' {
				return "", false
			}
		case '+':
			if c != '+' && c != '-' {
				return "", false
			}
		default:
			if c != stampShape[i] {
				return "", false
			}
		}
	}
	sc.pos += len(stampShape)
	return candidate, true
}
