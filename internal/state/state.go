// Package state holds the generator's working state (input text, chunk set
// and page index) and reads and writes it through a storage.Store.
package state

import (
	"encoding/json"

	"github.com/zhubert/qrpack/internal/errors"
	"github.com/zhubert/qrpack/internal/storage"
)

// Storage keys.
const (
	Key          = "qr_generator_data"
	ConfigTabKey = "configTabState"
	URLTabKey    = "urlTabState"
)

// Mode selects what the generator encodes.
type Mode string

const (
	ModeConfig Mode = "config"
	ModeURL    Mode = "url"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeConfig || m == ModeURL
}

// Other returns the mode m toggles to.
func (m Mode) Other() Mode {
	if m == ModeURL {
		return ModeConfig
	}
	return ModeURL
}

func (m Mode) tabKey() string {
	if m == ModeURL {
		return URLTabKey
	}
	return ConfigTabKey
}

// Record is the main persisted record.
type Record struct {
	InputValue   string   `json:"inputValue"`
	URLValue     string   `json:"urlValue,omitempty"`
	ActiveTab    Mode     `json:"activeTab,omitempty"`
	QRChunks     []string `json:"qrChunks"`
	CurrentIndex int      `json:"currentIndex"`
}

// TabSnapshot is the per-mode record written on every mode switch.
type TabSnapshot struct {
	InputValue   string   `json:"inputValue,omitempty"`
	URLValue     string   `json:"urlValue,omitempty"`
	QRChunks     []string `json:"qrChunks"`
	CurrentIndex int      `json:"currentIndex"`
}

// Save overwrites the main record.
func Save(store storage.Store, rec Record) error {
	return put(store, Key, rec)
}

// Load reads the main record. A missing key yields a zero Record and no
// error. A malformed record yields a zero Record and an error the caller
// is expected to log.
func Load(store storage.Store) (Record, error) {
	var rec Record
	if err := get(store, Key, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// SaveTab writes the snapshot for mode.
func SaveTab(store storage.Store, mode Mode, snap TabSnapshot) error {
	return put(store, mode.tabKey(), snap)
}

// LoadTab reads the snapshot for mode. ok is false when none is stored or
// the stored value cannot be parsed.
func LoadTab(store storage.Store, mode Mode) (TabSnapshot, bool) {
	data, found := store.Get(mode.tabKey())
	if !found {
		return TabSnapshot{}, false
	}
	var snap TabSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return TabSnapshot{}, false
	}
	return snap, true
}

// Clear removes every key this package writes.
func Clear(store storage.Store) error {
	for _, key := range []string{Key, ConfigTabKey, URLTabKey} {
		if err := store.Remove(key); err != nil {
			return errors.StateSaveFailed(key, err)
		}
	}
	return nil
}

func put(store storage.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.StateSaveFailed(key, err)
	}
	if err := store.Set(key, data); err != nil {
		return errors.StateSaveFailed(key, err)
	}
	return nil
}

func get(store storage.Store, key string, v any) error {
	data, ok := store.Get(key)
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.StateLoadFailed(key, err)
	}
	return nil
}
