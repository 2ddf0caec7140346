package repository

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"chefpal-backend/internal/models"
	"chefpal-backend/internal/services"
)

// SessionRepo persists chat sessions as one pretty-printed JSON file per
// session id inside a single directory. No locking: concurrent saves to the
// same id are last-write-wins, and writes are atomic (temp file + rename) so
// a concurrent List never observes a half-written document.
type SessionRepo struct {
	dir string
}

// NewSessionRepo creates the storage directory if it does not exist.
func NewSessionRepo(dir string) (*SessionRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sessions dir: %w", err)
	}
	return &SessionRepo{dir: dir}, nil
}

// List reads every session file in the directory. A file that fails to parse
// is skipped and logged rather than failing the whole listing. Order follows
// directory iteration and is not guaranteed stable.
func (r *SessionRepo) List() ([]models.Session, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}

	sessions := make([]models.Session, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			slog.Warn("skipping unreadable session file", "file", entry.Name(), "error", err)
			continue
		}

		var sess models.Session
		if err := json.Unmarshal(data, &sess); err != nil {
			slog.Warn("skipping corrupt session file", "file", entry.Name(), "error", err)
			continue
		}
		sessions = append(sessions, sess)
	}

	return sessions, nil
}

// Save writes the full session document to <id>.json, replacing any previous
// content for that id.
func (r *SessionRepo) Save(sess models.Session) error {
	path, err := r.sessionPath(sess.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename session file: %w", err)
	}

	return nil
}

// Delete removes the file named by id.
func (r *SessionRepo) Delete(id string) error {
	path, err := r.sessionPath(id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &services.NotFoundError{Message: "Session not found"}
		}
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// sessionPath maps an id to its file, rejecting ids that would resolve
// outside the storage directory.
func (r *SessionRepo) sessionPath(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || id == "." || id == ".." {
		return "", &services.ValidationError{Message: "Invalid session id"}
	}
	return filepath.Join(r.dir, id+".json"), nil
}
