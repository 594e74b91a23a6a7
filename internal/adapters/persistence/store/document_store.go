package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"rentmate/internal/core/domain"

	"go.uber.org/zap"
)

// legacyNames maps collections to file names written by older installs
var legacyNames = map[domain.Collection]string{
	domain.CollectionApplications: "applications",
}

// DocumentStore persists whole collections as JSON files in one directory
// and the signed-in user in a separate session slot.
//
// Reads fail open: a missing or undecodable file is reported as absent.
// Writes replace the whole file atomically.
type DocumentStore struct {
	dir      string
	sessions SessionSlot
	logger   *zap.Logger
}

// NewDocumentStore creates a store rooted at dir, creating the directory if needed
func NewDocumentStore(dir string, sessions SessionSlot, logger *zap.Logger) (*DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentStore{
		dir:      dir,
		sessions: sessions,
		logger:   logger,
	}, nil
}

// Dir returns the data directory
func (s *DocumentStore) Dir() string {
	return s.dir
}

// Path returns the file backing a collection
func (s *DocumentStore) Path(c domain.Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

func (s *DocumentStore) legacyPath(c domain.Collection) (string, bool) {
	name, ok := legacyNames[c]
	if !ok {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

// Exists reports whether the collection has ever been written
func (s *DocumentStore) Exists(ctx context.Context, c domain.Collection) bool {
	_, ok := s.read(ctx, c)
	return ok
}

// Load decodes the collection into dst. It returns false when the
// collection is missing, unreadable or corrupt; the content of dst is
// undefined then and callers must discard it.
func (s *DocumentStore) Load(ctx context.Context, c domain.Collection, dst any) bool {
	data, ok := s.read(ctx, c)
	if !ok {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		cerr := &domain.CorruptionError{Collection: string(c), Err: err}
		s.logger.Warn("treating collection as empty", zap.Error(cerr))
		return false
	}
	return true
}

func (s *DocumentStore) read(ctx context.Context, c domain.Collection) ([]byte, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	data, err := os.ReadFile(s.Path(c))
	if errors.Is(err, fs.ErrNotExist) {
		legacy, ok := s.legacyPath(c)
		if !ok {
			return nil, false
		}
		data, err = os.ReadFile(legacy)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false
		}
	}
	if err != nil {
		s.logger.Warn("failed to read collection",
			zap.String("collection", string(c)),
			zap.Error(err),
		)
		return nil, false
	}
	return data, true
}

// Save replaces the collection with v. Readers never observe a partial file.
func (s *DocumentStore) Save(ctx context.Context, c domain.Collection, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}

	if err := writeFileAtomic(s.Path(c), data); err != nil {
		return fmt.Errorf("save %s: %w", c, err)
	}

	if legacy, ok := s.legacyPath(c); ok {
		if err := os.Remove(legacy); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to remove legacy collection file",
				zap.String("path", legacy),
				zap.Error(err),
			)
		}
	}

	s.logger.Debug("collection saved",
		zap.String("collection", string(c)),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// writeFileAtomic writes to a temp file in the same directory and renames it over path
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// ============================================================
// Session slot
// ============================================================

// SaveSession stores user as the signed-in user
func (s *DocumentStore) SaveSession(ctx context.Context, user *domain.User) error {
	if err := s.sessions.Save(ctx, user); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns the signed-in user. Read and decode failures are
// logged and reported as no session.
func (s *DocumentStore) LoadSession(ctx context.Context) (*domain.User, bool) {
	data, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to read session", zap.Error(err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		cerr := &domain.CorruptionError{Collection: "session", Err: err}
		s.logger.Warn("ignoring stored session", zap.Error(cerr))
		return nil, false
	}
	return &user, true
}

// ClearSession empties the session slot
func (s *DocumentStore) ClearSession(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
