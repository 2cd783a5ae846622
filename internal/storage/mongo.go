package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "kv"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo keeps one document per key in the "kv" collection.
type Mongo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(mongoCollection), now: time.Now}
}

func (m *Mongo) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: mongo get %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (m *Mongo) Set(ctx context.Context, key, value string) error {
	doc := kvDocument{Key: key, Value: value, UpdatedAt: m.now().UTC()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("storage: mongo set %s: %w", key, err)
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("storage: mongo delete %s: %w", key, err)
	}
	return nil
}

var _ Port = (*Mongo)(nil)
