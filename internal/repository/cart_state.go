package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrCartStateNotFound is returned when no state is stored under a key.
var ErrCartStateNotFound = errors.New("cart state not found")

// CartStateDocument is one persisted cart. Value holds the cart state JSON exactly
// as the cart wrote it.
type CartStateDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// CartStateRepository stores cart state documents keyed by storage key.
type CartStateRepository struct {
	collection *mongo.Collection
}

// NewCartStateRepository creates a new cart state repository.
func NewCartStateRepository(db *MongoDB) *CartStateRepository {
	return &CartStateRepository{collection: db.Carts}
}

// Get returns the state stored under key.
func (r *CartStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var doc CartStateDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCartStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}

// Put replaces the state stored under key.
func (r *CartStateRepository) Put(ctx context.Context, key string, data []byte) error {
	doc := CartStateDocument{Key: key, Value: string(data), UpdatedAt: time.Now().UTC()}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

// Delete removes the state stored under key. Missing keys are not an error.
func (r *CartStateRepository) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
