package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the document-store collection products live in.
const Collection = "product"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   *time.Time         `bson:"created_at" json:"-"`
	UpdatedAt   *time.Time         `bson:"updated_at" json:"-"`
}
