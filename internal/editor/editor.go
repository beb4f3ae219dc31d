package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrNoEditor means neither TTRK_EDITOR, the editor config key nor EDITOR is set.
var ErrNoEditor = errors.New("no editor configured: set TTRK_EDITOR or EDITOR")

const scratchName = "ttrk-fixup.txt"

// Editor runs an external editor command on a scratch file.
type Editor struct {
	name string
	args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New splits command with shell quoting rules, so `code --wait` and
// `"/opt/Sub Lime/subl" -w` both work. The file to edit is appended as the
// last argument when the editor runs.
func New(command string) (*Editor, error) {
	if strings.TrimSpace(command) == "" {
		return nil, ErrNoEditor
	}
	fields, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", command, err)
	}
	if len(fields) == 0 {
		return nil, ErrNoEditor
	}
	return &Editor{
		name:   fields[0],
		args:   fields[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

// Name returns the editor executable.
func (e *Editor) Name() string {
	return e.name
}

// Edit writes content to a scratch file in a private temp directory, waits
// for the editor to exit and returns what it left in the file. The directory
// is removed afterwards. A non-zero exit is an error.
func (e *Editor) Edit(ctx context.Context, content string) (string, error) {
	dir, err := os.MkdirTemp("", "ttrk-")
	if err != nil {
		return "", fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, scratchName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}

	args := append(append([]string{}, e.args...), path)
	cmd := exec.Command(e.name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	slog.DebugContext(ctx, "launching editor", "editor", e.name, "file", path)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %s: %w", e.name, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read temp file: %w", err)
	}
	return string(edited), nil
}
