package chatui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SessionStore persists the conversation between runs. Corruption is never an
// error: an unreadable or invalid file simply yields a fresh conversation.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store backed by the given file path. An empty
// path disables persistence entirely.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath returns the per-user session file location.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio", "session.json"), nil
}

// Load restores the persisted conversation. Any failure — missing file,
// unreadable file, invalid JSON, wrong shape — returns nil so the caller
// starts over with the greeting.
func (s *SessionStore) Load() []Message {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var history []Message
	if err := json.Unmarshal(data, &history); err != nil {
		return nil
	}
	if len(history) == 0 {
		return nil
	}
	for _, msg := range history {
		if msg.Role != RoleUser && msg.Role != RoleAssistant && msg.Role != RoleSystem {
			return nil
		}
	}
	return history
}

// Save writes the conversation. Persistence is best-effort; a failed save
// never interrupts the conversation.
func (s *SessionStore) Save(history []Message) {
	if s.path == "" {
		return
	}
	data, err := json.Marshal(history)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}

// Reset deletes the persisted conversation.
func (s *SessionStore) Reset() {
	if s.path == "" {
		return
	}
	_ = os.Remove(s.path)
}
