package settings

import (
	"os"
	"sync"

	"coildrive/core"
)

// FileStore persists the settings record to a single file. Suitable for
// Linux hosts; TinyGo targets provide their own flash-backed store.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path. The file is
// created on the first Store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the record. A missing or corrupt file reads as "no
// record".
func (f *FileStore) Load() (core.MotionSettings, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path)
	if err != nil {
		return core.MotionSettings{}, false
	}
	return Decode(b)
}

// Store encodes and writes the record.
func (f *FileStore) Store(s core.MotionSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return os.WriteFile(f.path, Encode(s), 0o644)
}

// MemStore is an in-memory SettingsStore for tests and for targets whose
// persistent media is not wired up. It round-trips through the record codec
// so callers exercise the same layout as the durable stores.
type MemStore struct {
	mu  sync.Mutex
	rec []byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Load() (core.MotionSettings, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return core.MotionSettings{}, false
	}
	return Decode(m.rec)
}

func (m *MemStore) Store(s core.MotionSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = Encode(s)
	return nil
}
