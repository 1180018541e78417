package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the write+rename burst of an atomic save into
// one notification.
const debounceWindow = 50 * time.Millisecond

// SessionChange describes an external modification of the session file:
// another process logged in, switched identity, or logged out.
type SessionChange struct {
	IdentityID string // token after the change, empty when cleared
	Cleared    bool
	Timestamp  int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (c SessionChange) String() string {
	if c.Cleared {
		return "session cleared"
	}
	return fmt.Sprintf("session -> %s", c.IdentityID)
}

// Watch reports external changes to the session file until ctx is done.
// The watch is on the parent directory (the atomic rename never fires a
// plain write event on the file itself). Slow receivers drop changes; the
// latest state is always re-readable via Load.
func (s *Store) Watch(ctx context.Context) (<-chan SessionChange, error) {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan SessionChange, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		defer close(out)

		var debounce <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != filepath.Clean(s.Path) {
					continue
				}
				debounce = time.After(debounceWindow)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if s.logger != nil {
					s.logger.Warn("session watcher error", "error", err)
				}

			case <-debounce:
				debounce = nil
				id, ok, err := s.Load()
				if err != nil {
					if s.logger != nil {
						s.logger.Warn("failed to re-read session after change", "error", err)
					}
					continue
				}
				change := SessionChange{
					IdentityID: id,
					Cleared:    !ok,
					Timestamp:  time.Now().Unix(),
				}
				select {
				case out <- change:
				default:
				}
			}
		}
	})

	return out, nil
}
