// Package flatfile persists records as a pretty-printed JSON array in a
// single file. Every write replaces the whole file.
package flatfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const filePerm = 0o644

// Store reads and writes a JSON array of T at Path. It does no locking:
// two concurrent read-modify-write cycles race and the last WriteAll wins.
type Store[T any] struct {
	Path string
	log  zerolog.Logger
}

func NewStore[T any](path string, log zerolog.Logger) *Store[T] {
	return &Store[T]{Path: path, log: log}
}

// ReadAll returns the stored records. A missing, empty, unreadable or
// malformed file yields an empty slice.
func (s *Store[T]) ReadAll() []T {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.Path).Msg("flatfile: read failed, using empty set")
		}
		return []T{}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warn().Err(err).Str("path", s.Path).Msg("flatfile: invalid content, using empty set")
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

// WriteAll serializes records and replaces the file. The data goes to a
// temp file in the same directory first so readers never see a torn write.
func (s *Store[T]) WriteAll(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("flatfile: encode %s: %w", s.Path, err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("flatfile: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("flatfile: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flatfile: write %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flatfile: close temp: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("flatfile: chmod: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("flatfile: replace %s: %w", s.Path, err)
	}
	return nil
}
