// Package storage is a small key/value store that keeps every record in one
// JSON file on disk, so saved UI state survives restarts.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store holds raw JSON records by key.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error
}

// DefaultPath returns ~/.qrpack/storage.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".qrpack", "storage.json"), nil
}

// FileStore keeps all keys in a single JSON object. Every Set and Remove
// rewrites the file; the last write wins.
type FileStore struct {
	mu       sync.RWMutex
	records  map[string]json.RawMessage
	filePath string
}

// Open reads the store at path, creating an empty one if the file does not
// exist. A file that is not a JSON object is treated as empty and the error
// is returned alongside a usable store.
func Open(path string) (*FileStore, error) {
	s := &FileStore{
		records:  make(map[string]json.RawMessage),
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		s.records = make(map[string]json.RawMessage)
		return s, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.filePath
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Set stores value under key. value is kept as-is when it is valid JSON and
// as a JSON string otherwise.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := json.RawMessage(append([]byte(nil), value...))
	if !json.Valid(raw) {
		quoted, err := json.Marshal(string(value))
		if err != nil {
			return err
		}
		raw = quoted
	}
	s.records[key] = raw
	return s.flush()
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; !ok {
		return nil
	}
	delete(s.records, key)
	return s.flush()
}

// Keys returns the stored keys in no particular order.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	return keys
}

// flush writes the records to disk. Callers hold mu.
func (s *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.records[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}
