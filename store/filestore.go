package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/enginekit/containers/codec"
)

type fileStore struct {
	root  string
	codec codec.Codec
}

// NewFileStore creates a Store that keeps one file per sequence under
// root, named "<name><ext>" with the codec's extension. Names may contain
// slashes, which map to subdirectories.
func NewFileStore(root string, c codec.Codec) Store {
	return &fileStore{root: root, codec: c}
}

func (s *fileStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name)+s.codec.Extension())
}

func (s *fileStore) List(_ context.Context) ([]string, error) {
	var names []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return fs.SkipAll
			}
			return err
		}

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), s.codec.Extension()) {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		rel = strings.TrimSuffix(filepath.ToSlash(rel), s.codec.Extension())
		names = append(names, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return names, nil
}

func (s *fileStore) Load(_ context.Context, name string) ([]codec.Record, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, name, err)
	}

	records, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, name, err)
	}
	return records, nil
}

func (s *fileStore) Save(_ context.Context, name string, records []codec.Record) error {
	data, err := s.codec.Encode(records)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}

	path := s.path(name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, name string) error {
	path := s.path(name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete failed: %s: %w", name, err)
	}

	// Prune directories emptied by the removal.
	dir := filepath.Dir(path)
	for dir != s.root {
		if err := os.Remove(dir); err != nil {
			break
		}
		dir = filepath.Dir(dir)
	}

	return nil
}
