package docstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemory_InsertAndFindOne(t *testing.T) {
	s := NewMemory()
	id, err := s.Insert(context.Background(), "donor", Document{"name": "Asha", "age": 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	doc, err := s.FindOne(context.Background(), "donor", id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["id"] != id {
		t.Errorf("expected id %q, got %v", id, doc["id"])
	}
	if doc["name"] != "Asha" {
		t.Errorf("expected name Asha, got %v", doc["name"])
	}
	if doc["age"] != float64(30) {
		t.Errorf("expected age 30 as float64, got %v (%T)", doc["age"], doc["age"])
	}
}

func TestMemory_FindOne_MalformedID(t *testing.T) {
	s := NewMemory()
	_, err := s.FindOne(context.Background(), "donor", "not-a-uuid")
	if !errors.Is(err, ErrMalformedID) {
		t.Fatalf("expected ErrMalformedID, got %v", err)
	}
}

func TestMemory_FindOne_NotFound(t *testing.T) {
	s := NewMemory()
	_, err := s.FindOne(context.Background(), "donor", "b9e9e3a4-9a64-4a06-a3bb-4c9f2cdd5d6f")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_Find_EqFilter(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	s.Insert(ctx, "donor", Document{"blood_group": "A+", "eligible": true})
	s.Insert(ctx, "donor", Document{"blood_group": "O-", "eligible": true})
	s.Insert(ctx, "donor", Document{"blood_group": "A+", "eligible": false})

	docs, err := s.Find(ctx, "donor", Filter{Eq: map[string]interface{}{"blood_group": "A+", "eligible": true}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
}

func TestMemory_Find_GteFilter(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	s.Insert(ctx, "inventory", Document{"expiry_date": "2026-01-01"})
	s.Insert(ctx, "inventory", Document{"expiry_date": "2026-06-15"})
	s.Insert(ctx, "inventory", Document{"expiry_date": "2025-12-31"})

	docs, err := s.Find(ctx, "inventory", Filter{Gte: map[string]string{"expiry_date": "2026-01-01"}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
}

func TestMemory_Find_InsertionOrderAndLimit(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	var ids []string
	for i := 0; i < 5; i++ {
		id, _ := s.Insert(ctx, "request", Document{"n": i})
		ids = append(ids, id)
	}

	docs, err := s.Find(ctx, "request", Filter{}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, doc := range docs {
		if doc["id"] != ids[i] {
			t.Errorf("position %d: expected id %q, got %v", i, ids[i], doc["id"])
		}
	}
}

func TestMemory_Find_EmptyCollection(t *testing.T) {
	s := NewMemory()
	docs, err := s.Find(context.Background(), "nothing", Filter{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", docs)
	}
}

func TestMemory_UpdateOne(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	id, _ := s.Insert(ctx, "request", Document{"status": "pending", "units": 2})

	err := s.UpdateOne(ctx, "request", id, Document{"status": "approved", "updated_at": "2026-09-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, _ := s.FindOne(ctx, "request", id)
	if doc["status"] != "approved" {
		t.Errorf("expected status approved, got %v", doc["status"])
	}
	if doc["units"] != float64(2) {
		t.Errorf("expected units preserved, got %v", doc["units"])
	}
	if doc["updated_at"] != "2026-09-01T00:00:00Z" {
		t.Errorf("expected updated_at set, got %v", doc["updated_at"])
	}
}

func TestMemory_UpdateOne_NotFound(t *testing.T) {
	s := NewMemory()
	err := s.UpdateOne(context.Background(), "request", "b9e9e3a4-9a64-4a06-a3bb-4c9f2cdd5d6f", Document{"status": "approved"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_DeleteOne(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	id, _ := s.Insert(ctx, "inventory", Document{"units": 3})

	if err := s.DeleteOne(ctx, "inventory", id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.FindOne(ctx, "inventory", id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteOne(ctx, "inventory", id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemory_DeleteOne_MalformedID(t *testing.T) {
	s := NewMemory()
	err := s.DeleteOne(context.Background(), "inventory", "12345")
	if !errors.Is(err, ErrMalformedID) {
		t.Fatalf("expected ErrMalformedID, got %v", err)
	}
}

func TestMemory_Collections(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	s.Insert(ctx, "donor", Document{"name": "a"})
	s.Insert(ctx, "hospital", Document{"name": "b"})
	s.Insert(ctx, "request", Document{"units": 1})

	names, err := s.Collections(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"donor", "hospital", "request"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}

	names, _ = s.Collections(ctx, 2)
	if len(names) != 2 {
		t.Errorf("expected limit 2 respected, got %d names", len(names))
	}
}

func TestMemory_SetFailing(t *testing.T) {
	s := NewMemory()
	s.SetFailing(true)

	if err := s.Ping(context.Background()); err == nil {
		t.Error("expected ping error while failing")
	}
	if _, err := s.Insert(context.Background(), "donor", Document{"name": "x"}); err == nil {
		t.Error("expected insert error while failing")
	}

	s.SetFailing(false)
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("unexpected error after recovery: %v", err)
	}
}

func TestMarshal_DropsID(t *testing.T) {
	type record struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name"`
	}
	doc, err := Marshal(&record{ID: "should-go", Name: "Asha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["id"]; ok {
		t.Error("expected id key dropped")
	}
	if doc["name"] != "Asha" {
		t.Errorf("expected name Asha, got %v", doc["name"])
	}
}

func TestUnmarshal_CarriesID(t *testing.T) {
	type record struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name"`
	}
	var rec record
	err := Unmarshal(Document{"id": "abc", "name": "Asha"}, &rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "abc" || rec.Name != "Asha" {
		t.Errorf("unexpected record: %+v", rec)
	}
}
