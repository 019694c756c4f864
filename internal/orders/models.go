package orders

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the document-store collection orders live in.
const Collection = "order"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Item is a line in an order. product_id is an opaque reference and is not
// checked against the catalog; price is the client-submitted unit price.
type Item struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BuyerEmail string             `bson:"buyer_email" json:"buyer_email"`
	BuyerName  string             `bson:"buyer_name" json:"buyer_name"`
	IGN        string             `bson:"ign,omitempty" json:"ign,omitempty"`
	Items      []Item             `bson:"items" json:"items"`
	Total      float64            `bson:"total" json:"total"`
	Status     Status             `bson:"status" json:"status"`
}

// Total sums price*quantity over items, rounded to 2 decimals. The stored
// total is fixed at creation time and never recomputed on read.
func Total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return math.Round(sum*100) / 100
}
