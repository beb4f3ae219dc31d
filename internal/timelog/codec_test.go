package timelog

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEncodeEmptyLog(t *testing.T) {
	for _, log := range []*Log{nil, {}} {
		data, err := Encode(log)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if string(data) != `{"completed":[],"current":null}` {
			t.Fatalf("Encode(%v) = %s", log, data)
		}
	}
}

func TestEncodeSessionShape(t *testing.T) {
	start := time.Date(2022, time.June, 24, 16, 55, 46, 0, time.UTC)
	log := &Log{
		Completed: []Session{completedSession(start, start.Add(3*time.Second), "Message here")},
		Current:   &Session{Start: NewTime(start.Add(time.Hour))},
	}
	data, err := Encode(log)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{"completed":[{"start":"2022-06-24T16:55:46Z","end":"2022-06-24T16:55:49Z","message":"Message here"}],` +
		`"current":{"start":"2022-06-24T17:55:46Z","end":null,"message":null}}`
	if string(data) != want {
		t.Fatalf("Encode = %s, want %s", data, want)
	}
}

func TestDecodeInvertsEncode(t *testing.T) {
	start := time.Date(2022, time.June, 24, 16, 55, 46, 0, centralDaylight)
	want := &Log{
		Completed: []Session{
			completedSession(start, start.Add(3*time.Second), "first"),
			completedSession(start.Add(-time.Hour), start.Add(-30*time.Minute), "second"),
		},
		Current: &Session{Start: NewTime(start.Add(time.Hour))},
	}
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Decode(Encode(log)) mismatch (-want +got):\n%s", diff)
	}
	if RenderTime(got.Completed[0].Start) != RenderTime(want.Completed[0].Start) {
		t.Fatalf("offset lost: %s", RenderTime(got.Completed[0].Start))
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "  \n"} {
		got, err := Decode([]byte(input))
		if err != nil {
			t.Fatalf("Decode(%q): %v", input, err)
		}
		if !got.IsEmpty() {
			t.Fatalf("Decode(%q) = %#v, want empty log", input, got)
		}
	}
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"not json", `{"completed": [`, false},
		{"bad timestamp", `{"completed":[],"current":{"start":"yesterday","end":null,"message":null}}`, false},
		{"completed without end", `{"completed":[{"start":"2022-06-24T16:55:46Z","end":null,"message":"x"}],"current":null}`, true},
		{"current with message", `{"completed":[],"current":{"start":"2022-06-24T16:55:46Z","end":null,"message":"x"}}`, true},
	}
	for _, tt := range tests {
		_, err := Decode([]byte(tt.input))
		if err == nil {
			t.Errorf("%s: Decode error = nil, want error", tt.name)
			continue
		}
		if tt.invalid && !errors.Is(err, ErrInvalidLog) {
			t.Errorf("%s: Decode error = %v, want ErrInvalidLog", tt.name, err)
		}
	}
}
