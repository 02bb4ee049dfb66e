package notification

import (
	"context"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
)

// Collection is the document store collection holding notification records.
const Collection = "notification"

// Repository persists notification records.
type Repository interface {
	Create(ctx context.Context, n *Notification) (string, error)
	List(ctx context.Context, limit int) ([]*Notification, error)
}

type repo struct {
	store docstore.Store
}

// NewRepo creates a document-store-backed notification repository.
func NewRepo(store docstore.Store) Repository {
	return &repo{store: store}
}

func (r *repo) Create(ctx context.Context, n *Notification) (string, error) {
	doc, err := docstore.Marshal(n)
	if err != nil {
		return "", err
	}
	return r.store.Insert(ctx, Collection, doc)
}

func (r *repo) List(ctx context.Context, limit int) ([]*Notification, error) {
	docs, err := r.store.Find(ctx, Collection, docstore.Filter{}, limit)
	if err != nil {
		return nil, err
	}
	items := make([]*Notification, 0, len(docs))
	for _, doc := range docs {
		var n Notification
		if err := docstore.Unmarshal(doc, &n); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, nil
}
