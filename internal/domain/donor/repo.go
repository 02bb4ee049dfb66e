package donor

import (
	"context"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
)

// Collection is the document store collection holding donors.
const Collection = "donor"

// Repository persists donors.
type Repository interface {
	Create(ctx context.Context, d *Donor) (string, error)
	Get(ctx context.Context, id string) (*Donor, error)
	List(ctx context.Context, bloodGroup string, eligibleOnly bool) ([]*Donor, error)
}

type repo struct {
	store docstore.Store
}

// NewRepo creates a document-store-backed donor repository.
func NewRepo(store docstore.Store) Repository {
	return &repo{store: store}
}

func (r *repo) Create(ctx context.Context, d *Donor) (string, error) {
	doc, err := docstore.Marshal(d)
	if err != nil {
		return "", err
	}
	return r.store.Insert(ctx, Collection, doc)
}

func (r *repo) Get(ctx context.Context, id string) (*Donor, error) {
	doc, err := r.store.FindOne(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var d Donor
	if err := docstore.Unmarshal(doc, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repo) List(ctx context.Context, bloodGroup string, eligibleOnly bool) ([]*Donor, error) {
	eq := map[string]interface{}{}
	if bloodGroup != "" {
		eq["blood_group"] = bloodGroup
	}
	if eligibleOnly {
		eq["eligible"] = true
	}
	docs, err := r.store.Find(ctx, Collection, docstore.Filter{Eq: eq}, 0)
	if err != nil {
		return nil, err
	}
	items := make([]*Donor, 0, len(docs))
	for _, doc := range docs {
		var d Donor
		if err := docstore.Unmarshal(doc, &d); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, nil
}
