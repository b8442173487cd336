package widget

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore ...
type MemoryStore struct {
	mut     sync.Mutex
	entries map[string]int64
}

var _ VisitorStore = &MemoryStore{}

// NewMemoryStore ...
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: map[string]int64{},
	}
}

// Load ...
func (s *MemoryStore) Load(key string) (int64, bool, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	v, ok := s.entries[key]
	return v, ok, nil
}

// Save ...
func (s *MemoryStore) Save(key string, expiryMillis int64) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	s.entries[key] = expiryMillis
	return nil
}

// FileStore keeps the entries in a json file, the local storage of a terminal visitor
type FileStore struct {
	mut  sync.Mutex
	path string
}

var _ VisitorStore = &FileStore{}

// NewFileStore ...
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) read() (map[string]int64, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]int64{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read visitor store")
	}

	entries := map[string]int64{}
	if len(data) == 0 {
		return entries, nil
	}
	err = json.Unmarshal(data, &entries)
	if err != nil {
		return nil, errors.Wrap(err, "decode visitor store")
	}
	return entries, nil
}

// Load ...
func (s *FileStore) Load(key string) (int64, bool, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	entries, err := s.read()
	if err != nil {
		return 0, false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// Save replaces the file atomically
func (s *FileStore) Save(key string, expiryMillis int64) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[key] = expiryMillis

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode visitor store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create visitor store dir")
	}

	tmp, err := os.CreateTemp(dir, ".visitor-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp visitor store")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write visitor store")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close visitor store")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace visitor store")
}
