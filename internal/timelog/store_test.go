package timelog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faizmokh/ttrk/internal/files"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mgr, err := files.NewManager(filepath.Join(t.TempDir(), "ttrk.json"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return NewStore(mgr)
}

func TestStoreLoadCreatesMissingFile(t *testing.T) {
	store := newTestStore(t)

	log, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !log.IsEmpty() {
		t.Fatalf("Load = %#v, want empty log", log)
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestStoreSaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2022, time.June, 24, 16, 55, 46, 0, centralDaylight)

	want := &Log{
		Completed: []Session{completedSession(start, start.Add(3*time.Second), "Message here")},
		Current:   &Session{Start: NewTime(start.Add(time.Hour))},
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Completed) != 1 || got.Completed[0].Text() != "Message here" {
		t.Fatalf("Load completed = %#v", got.Completed)
	}
	if got.Current == nil || !got.Current.Start.Equal(want.Current.Start) {
		t.Fatalf("Load current = %#v, want %v", got.Current, want.Current.Start)
	}
}

func TestStoreLoadRejectsCorruptFileWithoutTouchingIt(t *testing.T) {
	store := newTestStore(t)
	corrupt := []byte(`{"completed": [`)
	if err := os.WriteFile(store.Path(), corrupt, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := store.Update(context.Background(), func(log *Log) error {
		t.Fatalf("Update ran fn on a corrupt log")
		return nil
	})
	if err == nil {
		t.Fatalf("Update error = nil, want parse error")
	}

	data, readErr := os.ReadFile(store.Path())
	if readErr != nil {
		t.Fatalf("ReadFile: %v", readErr)
	}
	if string(data) != string(corrupt) {
		t.Fatalf("corrupt log file rewritten to %q", data)
	}
}

func TestStoreUpdateSkipsSaveOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if _, err := store.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	err := store.Update(ctx, func(log *Log) error {
		if _, err := log.Begin(time.Now()); err != nil {
			return err
		}
		_, err := log.End(time.Now(), "two\nlines")
		return err
	})
	if !errors.Is(err, ErrMultilineMessage) {
		t.Fatalf("Update error = %v, want ErrMultilineMessage", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("log file written after failed update: %q", data)
	}
}

func TestStoreLastWriterWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := first.Begin(time.Now()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Current != nil {
		t.Fatalf("Current = %#v, want the second writer's empty log", got.Current)
	}
}
