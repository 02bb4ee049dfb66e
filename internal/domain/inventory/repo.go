package inventory

import (
	"context"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
)

// Collection is the document store collection holding inventory batches.
const Collection = "inventory"

// Repository persists inventory batches.
type Repository interface {
	Create(ctx context.Context, i *Item) (string, error)
	List(ctx context.Context, hospitalID, minExpiry string) ([]*Item, error)
	Delete(ctx context.Context, id string) error
}

type repo struct {
	store docstore.Store
}

// NewRepo creates a document-store-backed inventory repository.
func NewRepo(store docstore.Store) Repository {
	return &repo{store: store}
}

func (r *repo) Create(ctx context.Context, i *Item) (string, error) {
	doc, err := docstore.Marshal(i)
	if err != nil {
		return "", err
	}
	return r.store.Insert(ctx, Collection, doc)
}

func (r *repo) List(ctx context.Context, hospitalID, minExpiry string) ([]*Item, error) {
	f := docstore.Filter{}
	if hospitalID != "" {
		f.Eq = map[string]interface{}{"hospital_id": hospitalID}
	}
	if minExpiry != "" {
		f.Gte = map[string]string{"expiry_date": minExpiry}
	}
	docs, err := r.store.Find(ctx, Collection, f, 0)
	if err != nil {
		return nil, err
	}
	items := make([]*Item, 0, len(docs))
	for _, doc := range docs {
		var i Item
		if err := docstore.Unmarshal(doc, &i); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	return items, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteOne(ctx, Collection, id)
}
