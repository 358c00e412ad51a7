package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a string key-value store, like a browser's local storage.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemStore keeps values in memory only. It is used when nothing can be persisted.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// FileStore keeps all values in a single JSON object file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// OpenStore returns a FileStore for path if the file can be written, and a
// MemStore otherwise.
func OpenStore(path string) (Store, error) {
	if path == "" {
		return NewMemStore(), nil
	}
	fs := NewFileStore(path)
	if _, err := fs.read(); err != nil {
		return NewMemStore(), err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewMemStore(), fmt.Errorf("create state directory: %w", err)
	}
	return fs, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	// write next to the file and rename, so a crash never leaves it half written
	f, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	data := make(map[string]string)
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return data, nil
}

// Saver writes state snapshots to a store in the order they were taken.
// A snapshot that runs after a newer one was written is dropped.
type Saver struct {
	store Store

	mu sync.Mutex
	// last snapshot taken and last one written
	taken   uint64
	written uint64
}

func NewSaver(s Store) *Saver {
	return &Saver{store: s}
}

// Snapshot captures state and returns the func that saves it. The funcs may
// run on any goroutine, in any order.
func (sv *Saver) Snapshot(state State) func() error {
	sv.mu.Lock()
	sv.taken++
	rev := sv.taken
	sv.mu.Unlock()

	return func() error {
		sv.mu.Lock()
		defer sv.mu.Unlock()
		if rev <= sv.written {
			return nil
		}
		if err := Save(sv.store, state); err != nil {
			return err
		}
		sv.written = rev
		return nil
	}
}
