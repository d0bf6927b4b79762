package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence allocates monotonically increasing integer ids per entity name.
type Sequence interface {
	Next(ctx context.Context, name string) (int64, error)
}

type mongoSequence struct {
	collection *mongo.Collection
}

// NewSequence returns a Sequence backed by a counters collection, using an
// atomic upsert-and-increment per allocation.
func NewSequence(db *mongo.Database) Sequence {
	return &mongoSequence{
		collection: db.Collection("counters"),
	}
}

func (s *mongoSequence) Next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}
