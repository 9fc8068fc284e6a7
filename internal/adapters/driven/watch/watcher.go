// Package watch notifies about changes to a single source file using fsnotify.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher watches the directory containing a file and reports debounced
// content changes to that file. Watching the directory rather than the file
// keeps the watch alive across editors that save by rename.
type Watcher struct {
	debounce time.Duration
}

// New creates a watcher. A non-positive debounce uses the default.
func New(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = domain.DefaultWatchDebounce
	}
	return &Watcher{debounce: debounce}
}

// Debounce returns the quiet period applied to bursts of events.
func (w *Watcher) Debounce() time.Duration {
	return w.debounce
}

// Watch blocks until ctx is cancelled. onChange runs once as soon as the
// watch is registered, then after each debounced change. It runs on the
// watch goroutine, so calls never overlap. Events that leave the file
// content unchanged (touch, chmod, identical rewrite) are ignored.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func(ctx context.Context)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Debug("watching directory %s for %s (debounce %s)", dir, filepath.Base(abs), w.debounce)

	// Hash before the first call so edits made during it are seen as changes.
	lastHash := contentHash(abs)
	onChange(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op == fsnotify.Chmod {
				continue
			}
			logger.Debug("change detected: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case <-fire:
			fire = nil
			hash := contentHash(abs)
			if hash == "" || hash == lastHash {
				continue
			}
			lastHash = hash
			onChange(ctx)
		}
	}
}

// contentHash returns the hex SHA-256 of the file, or "" if it cannot be read.
func contentHash(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
