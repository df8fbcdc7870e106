package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type jsonFile struct {
	Version     int                                   `json:"version"`
	Collections map[string]map[string]json.RawMessage `json:"collections"`
}

// JSONStore keeps every collection in a single JSON file. It is the simplest
// local cache backend: always available, serialized as text, rewritten whole
// on each write.
type JSONStore struct {
	mu    sync.Mutex
	path  string
	store *jsonFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Open loads the backing file, creating an empty store if none exists yet. A
// file that fails to parse is treated as empty rather than fatal; the cache
// will be rewritten on the next write.
func (s *JSONStore) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	s.store = &jsonFile{Version: 1, Collections: make(map[string]map[string]json.RawMessage)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache: %w", err)
	}
	var loaded jsonFile
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil
	}
	if loaded.Collections != nil {
		s.store.Collections = loaded.Collections
	}
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

func (s *JSONStore) Read(_ context.Context, collection, key string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.store.Collections[collection][key]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *JSONStore) Write(_ context.Context, collection, key string, doc json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Collections[collection] == nil {
		s.store.Collections[collection] = make(map[string]json.RawMessage)
	}
	s.store.Collections[collection][key] = append(json.RawMessage(nil), doc...)
	return s.save()
}

func (s *JSONStore) List(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]json.RawMessage, 0, len(s.store.Collections[collection]))
	for _, doc := range s.store.Collections[collection] {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *JSONStore) Delete(_ context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.store.Collections[collection]
	if !ok {
		return nil
	}
	if _, ok := col[key]; !ok {
		return nil
	}
	delete(col, key)
	return s.save()
}

func (s *JSONStore) Ping(_ context.Context) error { return nil }

func (s *JSONStore) Close() error { return nil }
