package cover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Store is the settings-store contract: opaque records read and written by
// key. The catalog persistence below is one consumer; which backend holds
// the bytes is the store's business.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// FileStore keeps each key in its own YAML file under a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the record for a key.
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("reading store key %q: %w", key, err)
	}
	return data, nil
}

// Set writes the record for a key.
func (s *FileStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("writing store key %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file name, flattening separators so a key can never
// escape the store directory.
func (s *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".yaml")
}

// SaveCatalog persists a catalog's cover types under a key.
func SaveCatalog(s Store, key string, c *Catalog) error {
	types := c.All()
	data, err := yaml.Marshal(types)
	if err != nil {
		return fmt.Errorf("encoding cover catalog: %w", err)
	}
	return s.Set(key, data)
}

// LoadCatalog reads a catalog's cover types from a key. Types that fail
// validation in Add are dropped with a logged error, per the no-corruption
// rule; the rest load normally.
func LoadCatalog(s Store, key string, log *zap.Logger) (*Catalog, error) {
	data, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	var types []CoverType
	if err := yaml.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("decoding cover catalog: %w", err)
	}
	c := NewCatalog(log)
	for _, ct := range types {
		c.Add(ct)
	}
	return c, nil
}
