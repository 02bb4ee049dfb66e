// Package docstore provides a small document store addressed by collection
// name. Records are schemaless JSON documents with generated UUID ids and
// insertion-order listing. A Postgres JSONB implementation backs the server;
// an in-memory implementation with identical semantics backs tests.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrMalformedID is returned when an id cannot be parsed as a UUID.
	ErrMalformedID = errors.New("malformed document id")
)

// Document is the external representation of a stored record. The generated
// identifier is exposed under the "id" key as a plain string.
type Document map[string]interface{}

// Filter describes a document query. All clauses are ANDed. A nil or empty
// filter matches every document in the collection.
type Filter struct {
	// Eq holds exact-match constraints (field == value).
	Eq map[string]interface{}
	// Gte holds string >= constraints, used for ISO 8601 date comparison.
	Gte map[string]string
}

// Store is the document store gateway used by every repository.
type Store interface {
	// Insert serializes doc (without any "id" key) into the named collection
	// and returns the generated id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	// Find returns documents matching filter in insertion order. A limit of
	// zero or less means unbounded.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	// FindOne returns the document with the given id, ErrMalformedID when the
	// id is not a UUID, or ErrNotFound.
	FindOne(ctx context.Context, collection, id string) (Document, error)
	// UpdateOne shallow-merges set into the document with the given id.
	UpdateOne(ctx context.Context, collection, id string, set Document) error
	// DeleteOne removes the document with the given id.
	DeleteOne(ctx context.Context, collection, id string) error
	// Collections returns up to limit distinct collection names.
	Collections(ctx context.Context, limit int) ([]string, error)
	// Ping reports store connectivity.
	Ping(ctx context.Context) error
}

// Marshal converts a typed record into a Document via its JSON form, dropping
// any "id" key so the store controls identifier generation.
func Marshal(v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	delete(doc, "id")
	return doc, nil
}

// Unmarshal converts a Document back into a typed record. The "id" key is
// carried into any field tagged `json:"id"`.
func Unmarshal(doc Document, v interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	return nil
}
