package httpx

import "go.mongodb.org/mongo-driver/bson/primitive"

func newObjectID() primitive.ObjectID { return primitive.NewObjectID() }
