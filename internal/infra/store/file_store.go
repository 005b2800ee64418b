// Package store provides TokenStore implementations. The file store is the
// durable one, standing in for the browser's key-value storage.
package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"cinvoluntario/config"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
)

const tokenFileMode = 0o600

// fileStore keeps the session token in a single file. Writes go through a
// temp file plus rename so a crash mid-write never leaves a half token.
type fileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore builds the durable token store. The token lives under the
// user config directory unless the config overrides the path.
func NewFileStore(cfg *config.Config, logger *slog.Logger) (service.TokenStore, error) {
	path := cfg.Session.TokenPath
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve user config dir")
		}
		path = filepath.Join(base, "cinvoluntario", "token")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create token dir")
	}

	return &fileStore{path: path, logger: logger}, nil
}

// Load returns the stored token. Anything unreadable or malformed reads as
// an absent token so a corrupt store can never wedge the loading phase.
func (s *fileStore) Load(ctx context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("token file unreadable, treating as absent",
				slog.String("path", s.path), slog.Any("error", err))
		}

		return "", nil
	}

	token := strings.TrimSpace(string(raw))
	if !validToken(token) {
		s.logger.Warn("token file corrupt, treating as absent", slog.String("path", s.path))

		return "", nil
	}

	return token, nil
}

// Save persists the token atomically.
func (s *fileStore) Save(ctx context.Context, token string) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), tokenFileMode); err != nil {
		return errors.Wrap(err, "failed to write token file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace token file")
	}

	return nil
}

// Clear removes the token file. A missing file is not an error.
func (s *fileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token file")
	}

	return nil
}

// validToken accepts a single line of printable non-space characters, which
// covers every token shape the backends issue.
func validToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}
