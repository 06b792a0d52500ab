// Package store persists focusflow's tasks, settings and stats documents to a
// key-value backend.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/models"
)

// Document keys.
const (
	KeyTasks    = "tasks"
	KeySettings = "settings"
	KeyStats    = "stats"
)

// Store reads and writes whole JSON documents. Reads never fail: a missing
// or unreadable document leaves the caller's default in place.
type Store struct {
	backend Backend
}

// New wraps a backend.
func New(b Backend) *Store {
	return &Store{backend: b}
}

// Open returns a Store for the named driver at path.
func Open(driver, path string) (*Store, error) {
	var (
		b   Backend
		err error
	)

	switch driver {
	case config.DriverBolt, "":
		b, err = NewBoltClient(path)
	case config.DriverSQLite:
		b, err = NewSQLite(path)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store at %s: %w", driver, path, err)
	}

	return New(b), nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Load decodes the document stored under key into doc and reports whether it
// succeeded. On false, doc may be partially written and the caller must fall
// back to its default.
func (s *Store) Load(key string, doc any) bool {
	b, err := s.backend.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("reading document failed, using default",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return false
	}

	if err := json.Unmarshal(b, doc); err != nil {
		slog.Warn("document is corrupt, using default",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// Save overwrites the document stored under key.
func (s *Store) Save(key string, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := s.backend.Put(key, b); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}

// update decodes the document stored under key, falling back to def when it
// is missing or corrupt, applies fn and writes the result back in a single
// backend transaction. An error from fn aborts the write and is returned
// wrapped.
func update[T any](s *Store, key string, def func() T, fn func(*T) error) error {
	err := s.backend.Update(key, func(value []byte) ([]byte, error) {
		doc := def()

		if value != nil {
			if err := json.Unmarshal(value, &doc); err != nil {
				slog.Warn("document is corrupt, replacing it",
					slog.String("key", key),
					slog.Any("error", err),
				)

				doc = def()
			}
		}

		if err := fn(&doc); err != nil {
			return nil, err
		}

		return json.Marshal(doc)
	})
	if err != nil {
		return fmt.Errorf("updating %s: %w", key, err)
	}

	return nil
}

// LoadTasks returns the stored tasks, or an empty list.
func (s *Store) LoadTasks() []models.Task {
	var tasks []models.Task

	if !s.Load(KeyTasks, &tasks) {
		return []models.Task{}
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks
}

// SaveTasks overwrites the tasks document.
func (s *Store) SaveTasks(tasks []models.Task) error {
	return s.Save(KeyTasks, tasks)
}

// UpdateTasks re-reads the tasks document and replaces it with the list fn
// returns, atomically with respect to other focusflow processes.
func (s *Store) UpdateTasks(
	fn func(tasks []models.Task) ([]models.Task, error),
) error {
	return update(s, KeyTasks, func() []models.Task {
		return []models.Task{}
	}, func(tasks *[]models.Task) error {
		if *tasks == nil {
			*tasks = []models.Task{}
		}

		out, err := fn(*tasks)
		if err != nil {
			return err
		}

		*tasks = out

		return nil
	})
}

// LoadSettings returns the stored settings, or the defaults.
func (s *Store) LoadSettings() models.Settings {
	settings := models.DefaultSettings()

	if !s.Load(KeySettings, &settings) {
		return models.DefaultSettings()
	}

	return settings
}

// SaveSettings overwrites the settings document.
func (s *Store) SaveSettings(settings models.Settings) error {
	return s.Save(KeySettings, settings)
}

// LoadStats returns the stored stats, or an empty document.
func (s *Store) LoadStats() models.Stats {
	stats := models.DefaultStats()

	if !s.Load(KeyStats, &stats) {
		return models.DefaultStats()
	}

	return stats
}

// SaveStats overwrites the stats document.
func (s *Store) SaveStats(stats models.Stats) error {
	return s.Save(KeyStats, stats)
}

// UpdateStats re-reads the stats document, lets fn modify it and writes it
// back, atomically with respect to other focusflow processes.
func (s *Store) UpdateStats(fn func(stats *models.Stats) error) error {
	return update(s, KeyStats, models.DefaultStats, fn)
}

// Snapshot bundles every document, e.g. for export.
type Snapshot struct {
	Tasks    []models.Task   `json:"tasks"`
	Settings models.Settings `json:"settings"`
	Stats    models.Stats    `json:"stats"`
}

// Export writes all documents to w as a single indented JSON object.
func (s *Store) Export(w io.Writer) error {
	snap := Snapshot{
		Tasks:    s.LoadTasks(),
		Settings: s.LoadSettings(),
		Stats:    s.LoadStats(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(snap)
}
