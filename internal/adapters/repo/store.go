package repo

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ClasspathStore using a file-per-key strategy below
// the project's .vividus cache directory.
type Store struct{}

// NewStore creates a new ClasspathStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// classpathEntry is the on-disk schema of one cache file.
type classpathEntry struct {
	Entries []string `json:"entries"`
}

// Get retrieves the cached classpath entries for a given cache key.
func (s *Store) Get(projectDir, key string) ([]string, error) {
	filename := s.getFilename(projectDir, key)
	// #nosec G304 -- Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var entry classpathEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return entry.Entries, nil
}

// Put stores the classpath entries under the given cache key.
func (s *Store) Put(projectDir, key string, entries []string) error {
	data, err := json.MarshalIndent(classpathEntry{Entries: entries}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(projectDir, key)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	// #nosec G304 -- Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(projectDir, key string) string {
	return filepath.Join(domain.ClasspathCachePath(projectDir), key+".json")
}
