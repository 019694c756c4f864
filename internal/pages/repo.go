// Package pages serves static page content (tos, rules, privacy) stored in
// the document store.
package pages

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mcheros/storefront/internal/store"
)

const Collection = "pagecontent"

type PageContent struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key     string             `bson:"key" json:"key"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
}

type Repo struct{ DB *mongo.Database }

// GetByKey fetches the page for a key like "tos" or "rules"; unknown keys
// map to store.ErrNotFound.
func (r *Repo) GetByKey(ctx context.Context, key string) (*PageContent, error) {
	return store.FindOne[PageContent](ctx, r.DB, Collection, bson.M{"key": key})
}
