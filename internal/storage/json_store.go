package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fitness-tracker/internal/models"
)

// DefaultDataFile is the store location relative to the working directory.
const DefaultDataFile = "fitness_data.json"

// JSONStore persists the whole date -> record mapping to one JSON file.
type JSONStore struct {
	path string
	mu   sync.RWMutex
}

func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = DefaultDataFile
	}
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

// Load returns the stored mapping, or an empty one if the file doesn't exist.
func (s *JSONStore) Load() (models.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	store := models.Store{}
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if store == nil {
		// a file holding "null"
		store = models.Store{}
	}
	return store, nil
}

// Save replaces the file contents with store.
func (s *JSONStore) Save(store models.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store == nil {
		store = models.Store{}
	}
	data, err := json.MarshalIndent(store, "", "    ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
