package request

import (
	"context"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
)

// Collection is the document store collection holding blood requests.
const Collection = "request"

// Repository persists blood requests.
type Repository interface {
	Create(ctx context.Context, r *Request) (string, error)
	Get(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context, status, donorID, hospitalID string) ([]*Request, error)
	SetStatus(ctx context.Context, id, status, updatedAt string) error
}

type repo struct {
	store docstore.Store
}

// NewRepo creates a document-store-backed request repository.
func NewRepo(store docstore.Store) Repository {
	return &repo{store: store}
}

func (r *repo) Create(ctx context.Context, req *Request) (string, error) {
	doc, err := docstore.Marshal(req)
	if err != nil {
		return "", err
	}
	return r.store.Insert(ctx, Collection, doc)
}

func (r *repo) Get(ctx context.Context, id string) (*Request, error) {
	doc, err := r.store.FindOne(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var req Request
	if err := docstore.Unmarshal(doc, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repo) List(ctx context.Context, status, donorID, hospitalID string) ([]*Request, error) {
	eq := map[string]interface{}{}
	if status != "" {
		eq["status"] = status
	}
	if donorID != "" {
		eq["donor_id"] = donorID
	}
	if hospitalID != "" {
		eq["hospital_id"] = hospitalID
	}
	docs, err := r.store.Find(ctx, Collection, docstore.Filter{Eq: eq}, 0)
	if err != nil {
		return nil, err
	}
	items := make([]*Request, 0, len(docs))
	for _, doc := range docs {
		var req Request
		if err := docstore.Unmarshal(doc, &req); err != nil {
			return nil, err
		}
		items = append(items, &req)
	}
	return items, nil
}

func (r *repo) SetStatus(ctx context.Context, id, status, updatedAt string) error {
	return r.store.UpdateOne(ctx, Collection, id, docstore.Document{
		"status":     status,
		"updated_at": updatedAt,
	})
}
