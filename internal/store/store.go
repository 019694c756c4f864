// Package store provides generic document operations over named MongoDB
// collections. Documents are keyed by store-generated ObjectIDs which
// round-trip to hex strings for transport.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

// ParseID converts the transport form of an identifier back to an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// InsertOne stores doc in the named collection and returns the new id in hex.
func InsertOne(ctx context.Context, db *mongo.Database, collection string, doc any) (string, error) {
	res, err := db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store did not assign an ObjectID")
	}
	return oid.Hex(), nil
}

// InsertMany stores all docs in the named collection.
func InsertMany(ctx context.Context, db *mongo.Database, collection string, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := db.Collection(collection).InsertMany(ctx, docs)
	return err
}

// FindAll returns every document in the collection, unfiltered.
func FindAll[T any](ctx context.Context, db *mongo.Database, collection string) ([]T, error) {
	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single document by its hex id.
// Returns ErrInvalidID for malformed ids and ErrNotFound for missing ones.
func FindByID[T any](ctx context.Context, db *mongo.Database, collection, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return FindOne[T](ctx, db, collection, bson.M{"_id": oid})
}

// FindOne fetches the first document matching filter.
func FindOne[T any](ctx context.Context, db *mongo.Database, collection string, filter bson.M) (*T, error) {
	var out T
	err := db.Collection(collection).FindOne(ctx, filter).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Count reports the number of documents in the collection.
func Count(ctx context.Context, db *mongo.Database, collection string) (int64, error) {
	return db.Collection(collection).CountDocuments(ctx, bson.M{})
}

// Collections lists the collection names present in the database.
func Collections(ctx context.Context, db *mongo.Database) ([]string, error) {
	return db.ListCollectionNames(ctx, bson.M{})
}
