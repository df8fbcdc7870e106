package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

// memStore is an in-memory DocumentStore with injectable failures.
type memStore struct {
	mu     sync.Mutex
	docs   map[string]json.RawMessage
	fail   error
	writes int
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]json.RawMessage)}
}

func (m *memStore) Read(_ context.Context, collection, key string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	doc, ok := m.docs[collection+"/"+key]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (m *memStore) Write(_ context.Context, collection, key string, doc json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.docs[collection+"/"+key] = append(json.RawMessage(nil), doc...)
	m.writes++
	return nil
}

func (m *memStore) List(_ context.Context, collection string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	var docs []json.RawMessage
	prefix := collection + "/"
	for k, doc := range m.docs {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *memStore) Delete(_ context.Context, collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	delete(m.docs, collection+"/"+key)
	return nil
}

func (m *memStore) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail
}

func (m *memStore) Close() error { return nil }

func (m *memStore) setFail(err error) {
	m.mu.Lock()
	m.fail = err
	m.mu.Unlock()
}

func TestFallback_WriteMirrorsToLocal(t *testing.T) {
	remote := newMemStore()
	local := newMemStore()
	fb := NewFallback(remote, local)

	doc := json.RawMessage(`{"destination":"Kyoto"}`)
	if err := fb.Write(context.Background(), "trips", "k", doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for name, store := range map[string]*memStore{"remote": remote, "local": local} {
		got, err := store.Read(context.Background(), "trips", "k")
		if err != nil {
			t.Errorf("%s store missing document: %v", name, err)
			continue
		}
		if string(got) != string(doc) {
			t.Errorf("%s store holds %s, want %s", name, got, doc)
		}
	}
}

func TestFallback_RemoteWriteFailureIsSwallowed(t *testing.T) {
	remote := newMemStore()
	remote.setFail(errors.New("network down"))
	local := newMemStore()
	fb := NewFallback(remote, local)

	doc := json.RawMessage(`{"destination":"Kyoto"}`)
	if err := fb.Write(context.Background(), "trips", "k", doc); err != nil {
		t.Fatalf("remote failure must not surface, got: %v", err)
	}

	got, err := local.Read(context.Background(), "trips", "k")
	if err != nil {
		t.Fatalf("local copy missing after remote failure: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("local store holds %s, want %s", got, doc)
	}
}

func TestFallback_ReadPrefersRemote(t *testing.T) {
	remote := newMemStore()
	local := newMemStore()
	fb := NewFallback(remote, local)

	remote.Write(context.Background(), "trips", "k", json.RawMessage(`"fresh"`))
	local.Write(context.Background(), "trips", "k", json.RawMessage(`"stale"`))

	got, err := fb.Read(context.Background(), "trips", "k")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `"fresh"` {
		t.Errorf("expected remote copy, got %s", got)
	}
}

func TestFallback_ReadFallsBackOnRemoteError(t *testing.T) {
	remote := newMemStore()
	local := newMemStore()
	local.Write(context.Background(), "trips", "k", json.RawMessage(`"cached"`))
	remote.setFail(errors.New("timeout"))
	fb := NewFallback(remote, local)

	got, err := fb.Read(context.Background(), "trips", "k")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `"cached"` {
		t.Errorf("expected local copy, got %s", got)
	}
}

func TestFallback_ReadFallsBackOnRemoteAbsence(t *testing.T) {
	remote := newMemStore()
	local := newMemStore()
	local.Write(context.Background(), "trips", "k", json.RawMessage(`"cached"`))
	fb := NewFallback(remote, local)

	got, err := fb.Read(context.Background(), "trips", "k")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `"cached"` {
		t.Errorf("expected local copy, got %s", got)
	}
}

func TestFallback_AbsentEverywhereIsNotFound(t *testing.T) {
	fb := NewFallback(newMemStore(), newMemStore())

	if _, err := fb.Read(context.Background(), "trips", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFallback_LocalOnlyWithoutRemote(t *testing.T) {
	local := newMemStore()
	fb := NewFallback(nil, local)

	if fb.RemoteConfigured() {
		t.Error("RemoteConfigured should be false with a nil remote")
	}

	doc := json.RawMessage(`{"x":1}`)
	if err := fb.Write(context.Background(), "trips", "k", doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := fb.Read(context.Background(), "trips", "k")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("got %s, want %s", got, doc)
	}
}

func TestFallback_ListFallsBackOnRemoteError(t *testing.T) {
	remote := newMemStore()
	local := newMemStore()
	local.Write(context.Background(), "archives", "a1", json.RawMessage(`"one"`))
	local.Write(context.Background(), "archives", "a2", json.RawMessage(`"two"`))
	remote.setFail(errors.New("timeout"))
	fb := NewFallback(remote, local)

	docs, err := fb.List(context.Background(), "archives")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("expected 2 local documents, got %d", len(docs))
	}
}

func TestFallback_DeleteRemovesBothCopies(t *testing.T) {
	remote := newMemStore()
	local := newMemStore()
	fb := NewFallback(remote, local)

	fb.Write(context.Background(), "archives", "a1", json.RawMessage(`"doc"`))
	if err := fb.Delete(context.Background(), "archives", "a1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := remote.Read(context.Background(), "archives", "a1"); !errors.Is(err, ErrNotFound) {
		t.Error("remote copy survived delete")
	}
	if _, err := local.Read(context.Background(), "archives", "a1"); !errors.Is(err, ErrNotFound) {
		t.Error("local copy survived delete")
	}
}
