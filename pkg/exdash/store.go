package exdash

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"go.uber.org/zap"
)

// reloadDelay coalesces the burst of events a single save produces.
const reloadDelay = 250 * time.Millisecond

// Store holds the current dataset snapshot.
// Snapshots are immutable; a reload swaps in a new one.
type Store struct {
	path    string
	opts    Options
	logger  *zap.Logger
	current atomic.Pointer[models.Dataset]
}

// NewStore loads path and returns a Store serving it.
func NewStore(path string, opts Options, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: path, opts: opts, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore returns a Store that always serves ds.
func NewStaticStore(ds *models.Dataset) *Store {
	s := &Store{logger: zap.NewNop()}
	s.current.Store(ds)
	return s
}

// Current returns the dataset snapshot in use.
func (s *Store) Current() *models.Dataset {
	return s.current.Load()
}

// Reload reads the file again and swaps in the new snapshot.
// On error the previous snapshot stays in place.
func (s *Store) Reload() error {
	if s.path == "" {
		return fmt.Errorf("store has no backing file")
	}
	ds, err := Load(s.path, s.opts)
	if err != nil {
		return err
	}
	s.current.Store(ds)
	s.logger.Info("dataset loaded",
		zap.String("book", ds.BookName),
		zap.String("sheet", ds.SheetName),
		zap.Int("rows", len(ds.Rows)),
		zap.Int("columns", len(ds.Columns)))
	return nil
}

// Watch reloads the dataset whenever the backing file is rewritten.
// It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("store has no backing file")
	}
	target, err := filepath.Abs(s.path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(ev.Name)
			if name != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			if err := s.Reload(); err != nil {
				s.logger.Error("reload failed; keeping previous dataset", zap.String("path", s.path), zap.Error(err))
			}
		}
	}
}
