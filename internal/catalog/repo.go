package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mcheros/storefront/internal/store"
)

type Repo struct{ DB *mongo.Database }

// EnsureSeed inserts DefaultProducts iff the collection is empty, so the
// catalog bootstraps itself on first use and repeated calls never duplicate.
func (r *Repo) EnsureSeed(ctx context.Context) error {
	n, err := store.Count(ctx, r.DB, Collection)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	docs := make([]any, 0, len(DefaultProducts))
	for _, p := range DefaultProducts {
		docs = append(docs, p)
	}
	return store.InsertMany(ctx, r.DB, Collection, docs)
}

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	return store.FindAll[Product](ctx, r.DB, Collection)
}
