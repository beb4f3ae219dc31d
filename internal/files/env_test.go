package files

import (
	"path/filepath"
	"testing"
)

func TestResolveLogPathHonorsOverride(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom.json")

	got, err := ResolveLogPath(custom)
	if err != nil {
		t.Fatalf("ResolveLogPath() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveLogPath() = %q, want %q", got, custom)
	}
}

func TestResolveLogPathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveLogPath("~/logs/work.json")
	if err != nil {
		t.Fatalf("ResolveLogPath() error = %v", err)
	}

	want := filepath.Join(home, "logs", "work.json")
	if got != want {
		t.Fatalf("ResolveLogPath() = %q, want %q", got, want)
	}
}

func TestResolveLogPathKeepsTildeInsideName(t *testing.T) {
	got, err := ResolveLogPath("~backup.json")
	if err != nil {
		t.Fatalf("ResolveLogPath() error = %v", err)
	}
	if got != "~backup.json" {
		t.Fatalf("ResolveLogPath() = %q, want %q", got, "~backup.json")
	}
}

func TestResolveLogPathDefaultsToHomeDotfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveLogPath("  ")
	if err != nil {
		t.Fatalf("ResolveLogPath() error = %v", err)
	}

	want := filepath.Join(home, DefaultFileName)
	if got != want {
		t.Fatalf("ResolveLogPath() = %q, want %q", got, want)
	}
}
