package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Store with the same semantics as the Postgres
// implementation. It backs package tests and is safe for concurrent use.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]memDoc
	failing     bool
}

type memDoc struct {
	id   string
	data Document
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]memDoc)}
}

// SetFailing makes every subsequent operation return an error, simulating a
// lost store connection.
func (s *Memory) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *Memory) err() error {
	if s.failing {
		return fmt.Errorf("store unavailable")
	}
	return nil
}

func (s *Memory) Insert(_ context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err(); err != nil {
		return "", err
	}
	normalized, err := normalize(doc)
	if err != nil {
		return "", err
	}
	delete(normalized, "id")
	id := uuid.New().String()
	s.collections[collection] = append(s.collections[collection], memDoc{id: id, data: normalized})
	return id, nil
}

func (s *Memory) Find(_ context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.err(); err != nil {
		return nil, err
	}
	eq, err := normalize(Document(filter.Eq))
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0)
	for _, d := range s.collections[collection] {
		if !matches(d.data, eq, filter.Gte) {
			continue
		}
		docs = append(docs, externalize(d))
		if limit > 0 && len(docs) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *Memory) FindOne(_ context.Context, collection, id string) (Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.err(); err != nil {
		return nil, err
	}
	for _, d := range s.collections[collection] {
		if d.id == id {
			return externalize(d), nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UpdateOne(_ context.Context, collection, id string, set Document) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err(); err != nil {
		return err
	}
	patch, err := normalize(set)
	if err != nil {
		return err
	}
	for i, d := range s.collections[collection] {
		if d.id == id {
			for k, v := range patch {
				s.collections[collection][i].data[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s *Memory) DeleteOne(_ context.Context, collection, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err(); err != nil {
		return err
	}
	docs := s.collections[collection]
	for i, d := range docs {
		if d.id == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Memory) Collections(_ context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.err(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(s.collections))
	for name, docs := range s.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *Memory) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err()
}

// normalize round-trips a document through JSON so stored values and filter
// values compare identically (numbers as float64, maps as Document).
func normalize(doc Document) (Document, error) {
	if len(doc) == 0 {
		return Document{}, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

func matches(data, eq Document, gte map[string]string) bool {
	for k, want := range eq {
		got, ok := data[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	for k, min := range gte {
		got, ok := data[k].(string)
		if !ok || got < min {
			return false
		}
	}
	return true
}

func externalize(d memDoc) Document {
	out := make(Document, len(d.data)+1)
	for k, v := range d.data {
		out[k] = v
	}
	out["id"] = d.id
	return out
}
