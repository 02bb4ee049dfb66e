package hospital

import (
	"context"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
)

// Collection is the document store collection holding hospitals.
const Collection = "hospital"

// Repository persists hospitals.
type Repository interface {
	Create(ctx context.Context, h *Hospital) (string, error)
	Get(ctx context.Context, id string) (*Hospital, error)
	List(ctx context.Context) ([]*Hospital, error)
}

type repo struct {
	store docstore.Store
}

// NewRepo creates a document-store-backed hospital repository.
func NewRepo(store docstore.Store) Repository {
	return &repo{store: store}
}

func (r *repo) Create(ctx context.Context, h *Hospital) (string, error) {
	doc, err := docstore.Marshal(h)
	if err != nil {
		return "", err
	}
	return r.store.Insert(ctx, Collection, doc)
}

func (r *repo) Get(ctx context.Context, id string) (*Hospital, error) {
	doc, err := r.store.FindOne(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var h Hospital
	if err := docstore.Unmarshal(doc, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repo) List(ctx context.Context) ([]*Hospital, error) {
	docs, err := r.store.Find(ctx, Collection, docstore.Filter{}, 0)
	if err != nil {
		return nil, err
	}
	items := make([]*Hospital, 0, len(docs))
	for _, doc := range docs {
		var h Hospital
		if err := docstore.Unmarshal(doc, &h); err != nil {
			return nil, err
		}
		items = append(items, &h)
	}
	return items, nil
}
