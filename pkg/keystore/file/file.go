// Package file implements the keystore on a single JSON file, the default
// storage for single-node deployments.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wkdev/pacelular-backend/pkg/keystore"
	"go.uber.org/zap"
)

type store struct {
	path   string
	logger *zap.Logger
}

func New(path string, logger *zap.Logger) *store {
	return &store{
		path:   path,
		logger: logger,
	}
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}

	doc, ok := entries[key]
	if !ok {
		return nil, keystore.ErrKeyNotFound
	}

	return doc, nil
}

func (s *store) SetAll(ctx context.Context, entries map[string][]byte) error {
	current, err := s.read()
	if err != nil {
		return err
	}

	for key, doc := range entries {
		current[key] = doc
	}

	return s.write(current)
}

func (s *store) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}

		return nil, fmt.Errorf("unable to read state file: %w", err)
	}

	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("state file is corrupted, starting from empty", zap.Error(err))
		return map[string]json.RawMessage{}, nil
	}

	return entries, nil
}

// write replaces the state file atomically so a crash mid-write never leaves
// a half-written document behind.
func (s *store) write(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("unable to create state directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("unable to write state file: %w", err)
	}

	return os.Rename(tmp, s.path)
}
