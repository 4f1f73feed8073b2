package cashcook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Key is the store key under which the ledger is persisted.
const Key = "transactions"

// Store is a synchronous key-value blob store.
type Store interface {
	// Load returns the text stored under key. ok is false if nothing was ever saved.
	Load(key string) (text string, ok bool, err error)
	// Save replaces the text stored under key.
	Save(key, text string) error
}

// Store drivers understood by OpenStore.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// OpenStore opens the store for driver. path is a directory for the file
// driver and a database file for sqlite; dsn is only used by postgres.
//
// Callers should close the returned store if it implements io.Closer.
func OpenStore(driver, path, dsn string) (Store, error) {
	switch strings.ToLower(driver) {
	case DriverFile, "":
		return NewFileStore(path), nil
	case DriverSQLite:
		return OpenSQLiteStore(path)
	case DriverPostgres:
		return OpenPostgresStore(dsn)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// CloseStore closes s if it holds resources.
func CloseStore(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// MemoryStore keeps values in memory. Its zero value is not usable, use NewMemoryStore.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Load(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Save(key, text string) error {
	m.values[key] = text
	return nil
}

// FileStore saves each key to its own file "<dir>/<key>.json".
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file used for key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Load(key string) (string, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read %q: %w", f.Path(key), err)
	}
	return string(data), true, nil
}

// Save writes to a temporary file first and renames it, so a crash never leaves a truncated file.
func (f *FileStore) Save(key, text string) error {
	filePath := f.Path(key)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", filePath, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+key+"-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", filePath, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("could not set permissions on %q: %w", tmp.Name(), err)
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("could not replace %q: %w", filePath, err)
	}
	return nil
}
