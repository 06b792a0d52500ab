package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/focusflow/focusflow/internal/models"
)

type backendCase struct {
	name string
	open func(t *testing.T) Backend
}

var backends = []backendCase{
	{
		name: "bolt",
		open: func(t *testing.T) Backend {
			t.Helper()

			c, err := NewBoltClient(filepath.Join(t.TempDir(), "focusflow.db"))
			require.NoError(t, err)

			return c
		},
	},
	{
		name: "sqlite-memory",
		open: func(t *testing.T) Backend {
			t.Helper()

			s, err := NewMemory()
			require.NoError(t, err)

			return s
		},
	},
	{
		name: "sqlite-file",
		open: func(t *testing.T) Backend {
			t.Helper()

			s, err := NewSQLite(filepath.Join(t.TempDir(), "sub", "focusflow.sqlite"))
			require.NoError(t, err)

			return s
		},
	},
}

func newTestStore(t *testing.T, bc backendCase) *Store {
	t.Helper()

	s := New(bc.open(t))
	t.Cleanup(func() { s.Close() })

	return s
}

func sampleTasks() []models.Task {
	created := time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)

	return []models.Task{
		{
			ID:        created.UnixMilli(),
			Title:     "Write report",
			Category:  models.CategoryWork,
			Priority:  models.PriorityHigh,
			DueDate:   "2024-05-10",
			CreatedAt: created,
		},
		{
			ID:        created.UnixMilli() + 1,
			Title:     "Read chapter 3",
			Category:  models.CategoryStudy,
			Priority:  models.PriorityLow,
			Completed: true,
			CreatedAt: created.Add(time.Minute),
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			s := newTestStore(t, bc)

			tasks := sampleTasks()
			settings := models.Settings{
				WorkDuration:       50,
				ShortBreakDuration: 10,
				LongBreakDuration:  30,
				NotifSounds:        true,
			}
			stats := models.Stats{
				TotalPomodoros: 9,
				TotalTasks:     2,
				CompletedTasks: 1,
				FocusHours:     3.75,
				WeeklyData:     [7]int{0, 2, 3, 0, 4, 0, 0},
			}

			require.NoError(t, s.SaveTasks(tasks))
			require.NoError(t, s.SaveSettings(settings))
			require.NoError(t, s.SaveStats(stats))

			if diff := cmp.Diff(tasks, s.LoadTasks()); diff != "" {
				t.Errorf("tasks mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(settings, s.LoadSettings()); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(stats, s.LoadStats()); diff != "" {
				t.Errorf("stats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMissingDocumentsUseDefaults(t *testing.T) {
	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			s := newTestStore(t, bc)

			assert.Empty(t, s.LoadTasks())
			assert.NotNil(t, s.LoadTasks())
			assert.Equal(t, models.DefaultSettings(), s.LoadSettings())
			assert.Equal(t, models.DefaultStats(), s.LoadStats())
		})
	}
}

func TestCorruptDocumentsUseDefaults(t *testing.T) {
	corrupt := map[string]string{
		KeyTasks:    `[{"id": 1, "title": `,
		KeySettings: `{"workDuration": "twenty-five"}`,
		KeyStats:    `not json at all`,
	}

	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			b := bc.open(t)
			t.Cleanup(func() { b.Close() })

			for k, v := range corrupt {
				require.NoError(t, b.Put(k, []byte(v)))
			}

			s := New(b)

			assert.Empty(t, s.LoadTasks())
			assert.Equal(t, models.DefaultSettings(), s.LoadSettings())
			assert.Equal(t, models.DefaultStats(), s.LoadStats())
		})
	}
}

func TestPartialSettingsKeepDefaults(t *testing.T) {
	s := newTestStore(t, backends[1])

	require.NoError(t, s.backend.Put(KeySettings, []byte(`{"workDuration": 40}`)))

	want := models.DefaultSettings()
	want.WorkDuration = 40

	assert.Equal(t, want, s.LoadSettings())
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			s := newTestStore(t, bc)

			require.NoError(t, s.SaveTasks(sampleTasks()))
			require.NoError(t, s.SaveTasks(sampleTasks()[:1]))

			assert.Len(t, s.LoadTasks(), 1)
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			b := bc.open(t)
			t.Cleanup(func() { b.Close() })

			_, err := b.Get("nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestUpdateReadsStoredDocument(t *testing.T) {
	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			s := newTestStore(t, bc)

			err := s.UpdateTasks(func(tasks []models.Task) ([]models.Task, error) {
				assert.Empty(t, tasks)
				assert.NotNil(t, tasks)

				return sampleTasks()[:1], nil
			})
			require.NoError(t, err)

			err = s.UpdateTasks(func(tasks []models.Task) ([]models.Task, error) {
				return append(tasks, sampleTasks()[1]), nil
			})
			require.NoError(t, err)

			if diff := cmp.Diff(sampleTasks(), s.LoadTasks()); diff != "" {
				t.Fatalf("tasks mismatch (-want +got):\n%s", diff)
			}

			for range 2 {
				require.NoError(t, s.UpdateStats(func(doc *models.Stats) error {
					doc.TotalPomodoros++
					return nil
				}))
			}

			assert.Equal(t, 2, s.LoadStats().TotalPomodoros)
		})
	}
}

func TestUpdateAbortsOnError(t *testing.T) {
	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			s := newTestStore(t, bc)
			require.NoError(t, s.SaveStats(models.Stats{TotalPomodoros: 3}))

			errStop := errors.New("stop")

			err := s.UpdateStats(func(doc *models.Stats) error {
				doc.TotalPomodoros = 0
				return errStop
			})
			require.ErrorIs(t, err, errStop)

			assert.Equal(t, 3, s.LoadStats().TotalPomodoros)

			// the backend is usable again after a rolled back update
			require.NoError(t, s.UpdateStats(func(doc *models.Stats) error {
				doc.TotalTasks = 1
				return nil
			}))
			assert.Equal(t, 1, s.LoadStats().TotalTasks)
		})
	}
}

func TestUpdateReplacesCorruptDocument(t *testing.T) {
	for _, bc := range backends {
		t.Run(bc.name, func(t *testing.T) {
			b := bc.open(t)
			s := New(b)
			t.Cleanup(func() { s.Close() })

			require.NoError(t, b.Put(KeyStats, []byte(`{"totalPomodoros":`)))

			require.NoError(t, s.UpdateStats(func(doc *models.Stats) error {
				doc.TotalPomodoros++
				return nil
			}))

			assert.Equal(t, 1, s.LoadStats().TotalPomodoros)
		})
	}
}

func TestUpdateKeepsOtherWritersChanges(t *testing.T) {
	dir := t.TempDir()

	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(dir, "shared."+driver)

			first, err := Open(driver, path)
			require.NoError(t, err)

			defer first.Close()

			second, err := Open(driver, path)
			require.NoError(t, err)

			defer second.Close()

			for _, s := range []*Store{first, second, first} {
				require.NoError(t, s.UpdateStats(func(doc *models.Stats) error {
					doc.TotalPomodoros++
					return nil
				}))
			}

			assert.Equal(t, 3, first.LoadStats().TotalPomodoros)
			assert.Equal(t, 3, second.LoadStats().TotalPomodoros)
		})
	}
}

func TestBoltLockedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusflow.db")

	c, err := NewBoltClient(path)
	require.NoError(t, err)

	c.timeout = 50 * time.Millisecond

	held, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	defer held.Close()

	err = c.Put(KeyStats, []byte(`{}`))
	assert.ErrorIs(t, err, errStoreBusy)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("bolt", filepath.Join(dir, "a.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open("sqlite", filepath.Join(dir, "a.sqlite"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open("postgres", filepath.Join(dir, "a.pg"))
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusflow.sqlite")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, New(s).SaveSettings(models.Settings{WorkDuration: 1, ShortBreakDuration: 1, LongBreakDuration: 1}))
	require.NoError(t, s.Close())

	s2, err := NewSQLite(path)
	require.NoError(t, err)

	defer s2.Close()

	assert.Equal(t, 1, New(s2).LoadSettings().WorkDuration)
}

func TestExport(t *testing.T) {
	s := newTestStore(t, backends[1])

	require.NoError(t, s.SaveTasks(sampleTasks()))

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))

	var snap Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))

	assert.Len(t, snap.Tasks, 2)
	assert.Equal(t, models.DefaultSettings(), snap.Settings)
	assert.Equal(t, models.DefaultStats(), snap.Stats)
}
