package timelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/faizmokh/ttrk/internal/files"
)

// Store loads and persists the Log through the shared files.Manager. There is
// no locking: two processes saving at once leave the last writer's log.
type Store struct {
	manager *files.Manager
}

// NewStore wires a store using the shared files.Manager.
func NewStore(manager *files.Manager) *Store {
	return &Store{manager: manager}
}

// Path returns the log file location.
func (s *Store) Path() string {
	if s == nil || s.manager == nil {
		return ""
	}
	return s.manager.Path()
}

// Load reads the log, creating an empty log file first when none exists.
func (s *Store) Load(ctx context.Context) (*Log, error) {
	if s == nil || s.manager == nil {
		return nil, errors.New("store not initialized with file manager")
	}

	created, err := s.manager.EnsureLogFile()
	if err != nil {
		return nil, err
	}
	if created {
		slog.InfoContext(ctx, "created log file", "path", s.manager.Path())
	} else {
		slog.DebugContext(ctx, "using log file", "path", s.manager.Path())
	}

	data, err := s.manager.Read()
	if err != nil {
		return nil, err
	}

	log, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse log file %s: %w", s.manager.Path(), err)
	}
	return log, nil
}

// Save overwrites the log file with log.
func (s *Store) Save(ctx context.Context, log *Log) error {
	if s == nil || s.manager == nil {
		return errors.New("store not initialized with file manager")
	}
	if log == nil {
		log = &Log{}
	}

	data, err := Encode(log)
	if err != nil {
		return fmt.Errorf("encode log: %w", err)
	}
	if err := s.manager.Write(data); err != nil {
		return err
	}

	slog.DebugContext(ctx, "saved log file",
		"path", s.manager.Path(),
		"completed", len(log.Completed),
		"current", log.Current != nil,
	)
	return nil
}

// Update loads the log, applies fn and saves the result. Nothing is written
// when Load or fn fails.
func (s *Store) Update(ctx context.Context, fn func(*Log) error) error {
	log, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(log); err != nil {
		return err
	}
	return s.Save(ctx, log)
}
