package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandoffDocument records one order handed off to the messaging link.
type HandoffDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	SessionID     string             `bson:"session_id" json:"session_id"`
	RequestID     string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Items         int                `bson:"items" json:"items"`
	TotalQuantity int                `bson:"total_quantity" json:"total_quantity"`
	Total         string             `bson:"total" json:"total"`
	Message       string             `bson:"message" json:"message"`
}

// HandoffQueryOptions filters handoff queries.
type HandoffQueryOptions struct {
	SessionID string
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Skip      int
}

// HandoffRepository stores checkout handoffs.
type HandoffRepository struct {
	collection *mongo.Collection
}

// NewHandoffRepository creates a new handoff repository.
func NewHandoffRepository(db *MongoDB) *HandoffRepository {
	return &HandoffRepository{collection: db.Handoffs}
}

// Create inserts a handoff, filling in the id and timestamp when unset.
func (r *HandoffRepository) Create(ctx context.Context, doc *HandoffDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Query returns handoffs newest first.
func (r *HandoffRepository) Query(ctx context.Context, opts HandoffQueryOptions) ([]*HandoffDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, handoffFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []*HandoffDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns how many handoffs match opts. Limit and Skip are ignored.
func (r *HandoffRepository) Count(ctx context.Context, opts HandoffQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, handoffFilter(opts))
}

func handoffFilter(opts HandoffQueryOptions) bson.M {
	filter := bson.M{}
	if opts.SessionID != "" {
		filter["session_id"] = opts.SessionID
	}
	if opts.Since != nil || opts.Until != nil {
		window := bson.M{}
		if opts.Since != nil {
			window["$gte"] = *opts.Since
		}
		if opts.Until != nil {
			window["$lte"] = *opts.Until
		}
		filter["created_at"] = window
	}
	return filter
}
