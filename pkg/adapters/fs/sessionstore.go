// Package fs persists the session token as a JSON file in the user's
// config directory. It implements core.SessionStore with atomic writes and
// can watch the file for changes made by other processes.
package fs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// sessionFile is the on-disk shape. Version exists so a future format
// change can migrate instead of guessing.
type sessionFile struct {
	Version    int       `json:"version"`
	IdentityID string    `json:"identityId"`
	SavedAt    time.Time `json:"savedAt"`
}

// Store implements core.SessionStore on a single JSON file.
// It does not judge the token's freshness; a stale token is discovered
// (and cleared) downstream when the restore call fails.
type Store struct {
	Path   string // Path to session.json
	logger *slog.Logger
	mu     sync.Mutex
}

// NewStore creates a session store persisting at the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{Path: path, logger: logger}
}

// Save persists the identity token. The parent directory is created on demand.
func (s *Store) Save(identityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sessionFile{
		Version:    1,
		IdentityID: identityID,
		SavedAt:    time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	// Atomic write: a reader (or a crash) never sees a half-written token.
	if err := writeFileAtomic(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("session saved", "path", s.Path, "id", identityID)
	}
	return nil
}

// Load reads the persisted token. A missing file means no session, not an
// error. A corrupt file is treated as no session to self-heal; the next
// Save overwrites it.
func (s *Store) Load() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session file: %w", err)
	}

	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		if s.logger != nil {
			s.logger.Warn("session file corrupt, treating as no session", "path", s.Path, "error", err)
		}
		return "", false, nil
	}
	if sf.IdentityID == "" {
		return "", false, nil
	}

	return sf.IdentityID, true, nil
}

// Clear removes the persisted token. Clearing an absent session is fine.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session file: %w", err)
	}
	return nil
}
