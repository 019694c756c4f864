package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mcheros/storefront/internal/store"
)

type Repo struct{ DB *mongo.Database }

// Create persists the order and re-fetches the stored document so callers
// get the canonical representation, store-assigned id included.
func (r *Repo) Create(ctx context.Context, o *Order) (*Order, error) {
	id, err := store.InsertOne(ctx, r.DB, Collection, o)
	if err != nil {
		return nil, err
	}
	return store.FindByID[Order](ctx, r.DB, Collection, id)
}

// Get fetches a single order by its hex id. Missing orders map to
// store.ErrNotFound, malformed ids to store.ErrInvalidID.
func (r *Repo) Get(ctx context.Context, id string) (*Order, error) {
	return store.FindByID[Order](ctx, r.DB, Collection, id)
}
